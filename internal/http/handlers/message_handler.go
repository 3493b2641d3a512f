// Message HTTP handlers.
//
// This file exposes REST endpoints for batch chat messages:
//   - POST   /chats             (create a message in a batch)
//   - GET    /chats/{batch_id}  (list visible messages, optional recipient scope)
//   - PUT    /chats/{id}        (update message text)
//   - DELETE /chats/{id}        (delete a message)
//
// Handlers are transport-thin: they validate and normalize inputs, delegate
// to the MessageService, and translate results into HTTP responses,
// including a weak ETag on listings for conditional requests.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edulane/go-classchat-backend/internal/domain"
	"github.com/edulane/go-classchat-backend/internal/repo"
	"github.com/edulane/go-classchat-backend/internal/services"
)

//
// Service contract
//

// MessageService defines the message lifecycle operations consumed by the
// HTTP handlers. Implementations must be safe for concurrent use and honor
// the provided context for cancellation.
type MessageService interface {
	// Create validates and persists a new message with its scope snapshot.
	Create(ctx context.Context, in services.CreateMessageInput) (*domain.ChatMessage, error)
	// List returns the enriched messages visible to a viewer of the batch.
	List(ctx context.Context, batchID string, recipientID *string) ([]services.EnrichedMessage, error)
	// UpdateText replaces a message's text.
	UpdateText(ctx context.Context, id, text string) error
	// Delete permanently removes a message.
	Delete(ctx context.Context, id string) error
}

// Handlers groups the HTTP endpoints for chat messages. It depends on an
// abstract service interface to keep transport concerns separate from the
// scope-resolution logic.
type Handlers struct {
	msgSvc MessageService
}

// New constructs a Handlers instance bound to the given service.
func New(msgSvc MessageService) *Handlers {
	return &Handlers{msgSvc: msgSvc}
}

//
// DTOs
//

// CreateMessageRequest is the JSON payload for posting a message.
type CreateMessageRequest struct {
	// Text is the message body. Required, non-empty.
	Text string `json:"text" binding:"required,min=1" example:"Homework for tomorrow is exercise 4."`
	// BatchID is the owning class section. Required.
	BatchID string `json:"batch_id" binding:"required,min=1" example:"batch-7a"`
	// Sender is the author role tag; defaults to "teacher" when omitted.
	Sender string `json:"sender,omitempty" example:"teacher"`
	// UserID identifies the sending user for display-name enrichment.
	UserID *string `json:"user_id,omitempty" example:"u-102"`
	// RecipientID targets one student; such messages stay batch-local.
	RecipientID *string `json:"recipient_id,omitempty" example:"s-31"`
}

// CreateMessageResponse is the envelope for a newly created message.
type CreateMessageResponse struct {
	Message string              `json:"message" example:"Chat message created successfully"`
	Success bool                `json:"success" example:"true"`
	Data    *domain.ChatMessage `json:"data"`
}

// UpdateMessageRequest is the JSON payload for editing a message's text.
type UpdateMessageRequest struct {
	// Text is the replacement body. Required, non-empty.
	Text string `json:"text" binding:"required,min=1" example:"Homework for tomorrow is exercise 5."`
}

// StatusResponse is the confirmation envelope for update and delete.
type StatusResponse struct {
	Message string `json:"message" example:"Chat message updated successfully"`
	Success bool   `json:"success" example:"true"`
}

//
// Handlers
//

// CreateMessage godoc
// @ID          createMessage
// @Summary     Create a chat message
// @Description Persists a message in a batch. Batch-wide messages snapshot the
// @Description batch's current merge group; messages with a recipient_id stay
// @Description scoped to their batch regardless of merge state.
// @Tags        Chats
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateMessageRequest  true  "Message payload"
// @Success     201  {object}  handlers.CreateMessageResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing text or batch_id"
// @Failure     500  {object}  handlers.ErrorResponse  "Store failure"
// @Router      /chats [post]
func (h *Handlers) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text and batch_id are required")
		return
	}

	m, err := h.msgSvc.Create(c.Request.Context(), services.CreateMessageInput{
		Text:        req.Text,
		BatchID:     req.BatchID,
		Sender:      req.Sender,
		UserID:      req.UserID,
		RecipientID: req.RecipientID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyText), errors.Is(err, services.ErrMissingBatch):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, repo.ErrAmbiguousMembership):
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, CreateMessageResponse{
		Message: "Chat message created successfully",
		Success: true,
		Data:    m,
	})
}

// ListMessages godoc
// @ID          listMessages
// @Summary     List visible messages for a batch
// @Description Returns the messages visible to a viewer of the batch, ordered
// @Description by creation time ascending. If the batch is merged, batch-wide
// @Description traffic of the whole group is included. A recipient_id query
// @Description switches to the individual thread: messages addressed to that
// @Description recipient plus the batch's own batch-wide messages.
// @Tags        Chats
// @Produce     json
// @Param       batch_id      path   string  true   "Batch ID"
// @Param       recipient_id  query  string  false  "Recipient (student) ID"
// @Success     200  {array}   services.EnrichedMessage
// @Failure     500  {object}  handlers.ErrorResponse  "Store or resolver failure"
// @Router      /chats/{batch_id} [get]
func (h *Handlers) ListMessages(c *gin.Context) {
	batchID := c.Param("batch_id")

	var recipientID *string
	if r := strings.TrimSpace(c.Query("recipient_id")); r != "" {
		recipientID = &r
	}

	items, err := h.msgSvc.List(c.Request.Context(), batchID, recipientID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingBatch):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, repo.ErrAmbiguousMembership):
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		}
		return
	}

	// Weak ETag over the listed set (best effort).
	var maxTS int64
	for _, m := range items {
		if ts := m.UpdatedAt.Unix(); ts > maxTS {
			maxTS = ts
		}
	}
	etag := fmt.Sprintf(`W/"chats:%s:%d:%d"`, batchID, len(items), maxTS)
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return
	}

	ok(c, http.StatusOK, items)
}

// UpdateMessage godoc
// @ID          updateMessage
// @Summary     Update a message's text
// @Description Replaces the text of an existing message. No other field is
// @Description mutable after creation.
// @Tags        Chats
// @Accept      json
// @Produce     json
// @Param       id    path  string                         true  "Message ID (UUID)"  format(uuid)
// @Param       body  body  handlers.UpdateMessageRequest  true  "New text"
// @Success     200  {object}  handlers.StatusResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing text"
// @Failure     404  {object}  handlers.ErrorResponse  "Message not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Store failure"
// @Router      /chats/{id} [put]
func (h *Handlers) UpdateMessage(c *gin.Context) {
	id := c.Param("id")

	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text is required")
		return
	}

	if err := h.msgSvc.UpdateText(c.Request.Context(), id, req.Text); err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyText):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrMessageNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "message not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, StatusResponse{
		Message: "Chat message updated successfully",
		Success: true,
	})
}

// DeleteMessage godoc
// @ID          deleteMessage
// @Summary     Delete a message
// @Description Permanently removes a message.
// @Tags        Chats
// @Produce     json
// @Param       id  path  string  true  "Message ID (UUID)"  format(uuid)
// @Success     200  {object}  handlers.StatusResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Message not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Store failure"
// @Router      /chats/{id} [delete]
func (h *Handlers) DeleteMessage(c *gin.Context) {
	id := c.Param("id")

	if err := h.msgSvc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrMessageNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "message not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, StatusResponse{
		Message: "Chat message deleted successfully",
		Success: true,
	})
}
