package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"quotebook-backend/internal/domains/sentence/model"
	"quotebook-backend/internal/domains/sentence/service"
	"quotebook-backend/internal/shared/response"
)

// SentenceHandler handles HTTP requests for the sentence domain.
// Every failure is answered with 500 and a fixed per-operation message; details only go to the log.
type SentenceHandler struct {
	service service.ServiceInterface
}

// NewSentenceHandler creates a new sentence handler instance
func NewSentenceHandler(service service.ServiceInterface) *SentenceHandler {
	return &SentenceHandler{service: service}
}

// RegisterRoutes mounts the CRUD routes on the given group
func (h *SentenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sentences := rg.Group("/sentences")
	{
		sentences.GET("", h.ListSentences)
		sentences.POST("", h.CreateSentence)
		sentences.PUT("/:id", h.UpdateSentence)
		sentences.DELETE("/:id", h.DeleteSentence)
	}
}

// ListSentences handles GET /api/sentences
func (h *SentenceHandler) ListSentences(c *gin.Context) {
	sentences, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, model.MsgFetchFailed)
		return
	}

	response.Success(c, http.StatusOK, sentences)
}

// CreateSentence handles POST /api/sentences
func (h *SentenceHandler) CreateSentence(c *gin.Context) {
	var req model.CreateSentenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, err, model.MsgCreateFailed)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, model.MsgCreateFailed)
		return
	}

	response.Success(c, http.StatusOK, created)
}

// UpdateSentence handles PUT /api/sentences/:id
func (h *SentenceHandler) UpdateSentence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// cannot name a stored record
		response.Null(c)
		return
	}

	var req model.UpdateSentenceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.fail(c, err, model.MsgUpdateFailed)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if errors.Is(err, model.ErrSentenceNotFound) {
		response.Null(c)
		return
	}
	if err != nil {
		h.fail(c, err, model.MsgUpdateFailed)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteSentence handles DELETE /api/sentences/:id
func (h *SentenceHandler) DeleteSentence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Message(c, http.StatusOK, model.MsgDeleted)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, model.MsgDeleteFailed)
		return
	}

	response.Message(c, http.StatusOK, model.MsgDeleted)
}

func (h *SentenceHandler) fail(c *gin.Context, err error, message string) {
	// the access log picks this up
	_ = c.Error(err)
	response.InternalServerError(c, message)
}
