package client

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quotebook-backend/internal/domains/sentence/model"
)

type mockRemote struct {
	mock.Mock
}

func (m *mockRemote) List(ctx context.Context) ([]model.Sentence, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]model.Sentence)
	return s, args.Error(1)
}

func (m *mockRemote) Create(ctx context.Context, english, chinese string) (*model.Sentence, error) {
	args := m.Called(ctx, english, chinese)
	s, _ := args.Get(0).(*model.Sentence)
	return s, args.Error(1)
}

func (m *mockRemote) Update(ctx context.Context, id string, english, chinese *string) (*model.Sentence, error) {
	args := m.Called(ctx, id, english, chinese)
	s, _ := args.Get(0).(*model.Sentence)
	return s, args.Error(1)
}

func (m *mockRemote) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func seeded(t *testing.T) (*Board, *mockRemote, []model.Sentence) {
	t.Helper()
	items := []model.Sentence{
		{ID: uuid.New(), English: "B", Chinese: "乙"},
		{ID: uuid.New(), English: "A", Chinese: "甲"},
	}
	remote := new(mockRemote)
	remote.On("List", mock.Anything).Return(items, nil).Once()

	b := NewBoard(remote)
	require.NoError(t, b.Refresh(context.Background()))
	return b, remote, items
}

func TestBoard_AddPrepends(t *testing.T) {
	b, remote, items := seeded(t)
	c := model.Sentence{ID: uuid.New(), English: "C", Chinese: "丙"}
	remote.On("Create", mock.Anything, "C", "丙").Return(&c, nil)

	_, err := b.Add(context.Background(), "C", "丙")
	require.NoError(t, err)

	got := b.Items()
	require.Len(t, got, 3)
	assert.Equal(t, c.ID, got[0].ID)
	assert.Equal(t, items[0].ID, got[1].ID)
}

func TestBoard_EditReplacesInPlace(t *testing.T) {
	b, remote, items := seeded(t)
	changed := items[1]
	changed.Chinese = "甲甲"
	remote.On("Update", mock.Anything, changed.ID.String(), (*string)(nil), mock.Anything).Return(&changed, nil)

	_, err := b.Edit(context.Background(), changed.ID.String(), nil, strPtr("甲甲"))
	require.NoError(t, err)

	got := b.Items()
	require.Len(t, got, 2)
	assert.Equal(t, "甲甲", got[1].Chinese)
	assert.Equal(t, items[0], got[0])
}

func TestBoard_EditNullDropsStaleRow(t *testing.T) {
	b, remote, items := seeded(t)
	remote.On("Update", mock.Anything, items[0].ID.String(), mock.Anything, mock.Anything).Return(nil, nil)

	got, err := b.Edit(context.Background(), items[0].ID.String(), strPtr("x"), nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	view := b.Items()
	require.Len(t, view, 1)
	assert.Equal(t, items[1].ID, view[0].ID)
}

func TestBoard_RemoveDrops(t *testing.T) {
	b, remote, items := seeded(t)
	remote.On("Delete", mock.Anything, items[1].ID.String()).Return(nil)

	require.NoError(t, b.Remove(context.Background(), items[1].ID.String()))

	view := b.Items()
	require.Len(t, view, 1)
	assert.Equal(t, items[0].ID, view[0].ID)
}

func TestBoard_FailuresLeaveViewUnchanged(t *testing.T) {
	b, remote, items := seeded(t)
	boom := &APIError{StatusCode: 500, Message: "Failed to update sentence"}
	ctx := context.Background()

	remote.On("List", mock.Anything).Return(nil, errors.New("offline"))
	remote.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)
	remote.On("Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)
	remote.On("Delete", mock.Anything, mock.Anything).Return(boom)

	assert.Error(t, b.Refresh(ctx))
	_, err := b.Add(ctx, "C", "丙")
	assert.Error(t, err)
	_, err = b.Edit(ctx, items[0].ID.String(), strPtr("x"), nil)
	assert.ErrorIs(t, err, boom)
	assert.Error(t, b.Remove(ctx, items[0].ID.String()))

	assert.Equal(t, items, b.Items())
}

func TestBoard_ItemsIsACopy(t *testing.T) {
	b, _, items := seeded(t)

	view := b.Items()
	view[0].English = "mutated"

	assert.Equal(t, items[0].English, b.Items()[0].English)
}
