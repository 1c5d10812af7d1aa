package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"quotebook-backend/internal/domains/sentence/model"
)

// postgresRepository implements RepositoryInterface with pgx.
// The pool is never held directly: each call asks the connection cache first.
type postgresRepository struct {
	conns Acquirer
}

// NewPostgresRepository creates a sentence repository backed by PostgreSQL
func NewPostgresRepository(conns Acquirer) RepositoryInterface {
	return &postgresRepository{conns: conns}
}

const sentenceColumns = `id, english, chinese, created_at, updated_at`

func scanSentence(row pgx.Row) (*model.Sentence, error) {
	var s model.Sentence
	if err := row.Scan(&s.ID, &s.English, &s.Chinese, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// List retrieves all sentences, most recently created first
func (r *postgresRepository) List(ctx context.Context) ([]model.Sentence, error) {
	db, err := r.conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	query := `
        SELECT ` + sentenceColumns + `
        FROM sentences
        ORDER BY created_at DESC, id DESC
    `

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sentences: %w", err)
	}
	defer rows.Close()

	sentences := make([]model.Sentence, 0)
	for rows.Next() {
		s, err := scanSentence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sentence: %w", err)
		}
		sentences = append(sentences, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sentences: %w", err)
	}

	return sentences, nil
}

// Create inserts a new sentence with a time-ordered ID
func (r *postgresRepository) Create(ctx context.Context, english, chinese string) (*model.Sentence, error) {
	db, err := r.conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate sentence id: %w", err)
	}

	// one NOW() per statement, so created_at == updated_at
	query := `
        INSERT INTO sentences (id, english, chinese, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        RETURNING ` + sentenceColumns

	created, err := scanSentence(db.QueryRow(ctx, query, id, english, chinese))
	if err != nil {
		if isCheckViolation(err) {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidSentence, err)
		}
		return nil, fmt.Errorf("failed to create sentence: %w", err)
	}

	return created, nil
}

// Update applies the supplied fields in a single statement
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, english, chinese *string) (*model.Sentence, error) {
	db, err := r.conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	// GREATEST keeps updated_at monotonic even if the server clock steps back
	query := `
        UPDATE sentences
        SET
            english = COALESCE($2::text, english),
            chinese = COALESCE($3::text, chinese),
            updated_at = GREATEST(NOW(), updated_at)
        WHERE id = $1
        RETURNING ` + sentenceColumns

	updated, err := scanSentence(db.QueryRow(ctx, query, id, english, chinese))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSentenceNotFound
		}
		if isCheckViolation(err) {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidSentence, err)
		}
		return nil, fmt.Errorf("failed to update sentence: %w", err)
	}

	return updated, nil
}

// Delete removes a sentence by ID; zero affected rows is still success
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.conns.Acquire(ctx)
	if err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `DELETE FROM sentences WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete sentence: %w", err)
	}

	return nil
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514" // check_violation
}
