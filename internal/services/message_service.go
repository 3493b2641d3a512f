// Package services – MessageService
//
// This file implements MessageService, the application-level component that
// owns the lifecycle of batch chat messages. It validates inputs, computes
// the visibility scope for writes and reads via ScopeAssigner and
// VisibilityQueryBuilder, and coordinates repository operations for
// creating, listing (with identity enrichment), updating, and deleting
// messages.
//
// Every operation is stateless and executes against the shared store; the
// service holds no in-process mutable state and needs no locks. The
// membership read performed by a create and the subsequent insert are
// intentionally not wrapped in a transaction: if the batch's membership
// changes between the two, the new message keeps the snapshot taken at
// resolve time.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// the batch and message identifiers.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/edulane/go-classchat-backend/internal/domain"
	"github.com/edulane/go-classchat-backend/internal/repo"
)

// defaultSender is the role tag applied when a create request names none.
const defaultSender = "teacher"

// CreateMessageInput carries the caller-supplied fields of a new message.
// Text and BatchID are required; the rest are optional.
type CreateMessageInput struct {
	Text        string
	BatchID     string
	Sender      string
	UserID      *string
	RecipientID *string
}

// MessageService coordinates message persistence and scope resolution.
type MessageService struct {
	DB       *gorm.DB
	Assigner ScopeAssigner
	Query    VisibilityQueryBuilder
}

// NewMessageService constructs a MessageService whose scope components share
// a store-backed merge-group resolver on the given DB handle.
func NewMessageService(db *gorm.DB) *MessageService {
	resolver := StoreMergeGroupResolver{DB: db}
	return &MessageService{
		DB:       db,
		Assigner: ScopeAssigner{Resolver: resolver},
		Query:    VisibilityQueryBuilder{Resolver: resolver},
	}
}

// Create validates the input, computes the merge-group snapshot for the new
// message, and inserts it. The returned record is the persisted row.
func (s *MessageService) Create(ctx context.Context, in CreateMessageInput) (*domain.ChatMessage, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.String("batch.id", in.BatchID)),
	)
	defer span.End()

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if strings.TrimSpace(in.BatchID) == "" {
		return nil, ErrMissingBatch
	}
	sender := strings.TrimSpace(in.Sender)
	if sender == "" {
		sender = defaultSender
	}

	group, err := s.Assigner.Assign(ctx, in.BatchID, in.RecipientID)
	if err != nil {
		return nil, err
	}

	return repo.CreateMessage(ctx, s.DB, text, in.BatchID, sender, group, in.UserID, in.RecipientID)
}

// List returns the messages visible to a viewer of batchID, enriched with
// sender and recipient display names, ordered by creation time ascending.
// A non-nil recipientID switches to individual mode. The result is never
// nil, possibly empty.
func (s *MessageService) List(ctx context.Context, batchID string, recipientID *string) ([]EnrichedMessage, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(attribute.String("batch.id", batchID)),
	)
	defer span.End()

	if strings.TrimSpace(batchID) == "" {
		return nil, ErrMissingBatch
	}

	filter, err := s.Query.Build(ctx, batchID, recipientID)
	if err != nil {
		return nil, err
	}

	msgs, err := repo.ListMessages(ctx, s.DB, filter)
	if err != nil {
		return nil, err
	}

	return s.enrichAll(ctx, msgs)
}

// UpdateText replaces the text of an existing message. Returns
// ErrMessageNotFound when no row matched the id; no other field is mutable
// through this path.
func (s *MessageService) UpdateText(ctx context.Context, id, text string) error {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "UpdateText",
		trace.WithAttributes(attribute.String("message.id", id)),
	)
	defer span.End()

	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}

	affected, err := repo.UpdateMessageText(ctx, s.DB, id, text)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// Delete permanently removes a message. Returns ErrMessageNotFound when no
// row matched the id.
func (s *MessageService) Delete(ctx context.Context, id string) error {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(attribute.String("message.id", id)),
	)
	defer span.End()

	affected, err := repo.DeleteMessage(ctx, s.DB, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// enrichAll batch-fetches the identity rows referenced by msgs and joins
// each message with its display names.
func (s *MessageService) enrichAll(ctx context.Context, msgs []domain.ChatMessage) ([]EnrichedMessage, error) {
	userIDs := make([]string, 0, len(msgs))
	studentIDs := make([]string, 0, len(msgs))
	seenUser := make(map[string]struct{})
	seenStudent := make(map[string]struct{})
	for _, m := range msgs {
		if m.UserID != nil {
			if _, ok := seenUser[*m.UserID]; !ok {
				seenUser[*m.UserID] = struct{}{}
				userIDs = append(userIDs, *m.UserID)
			}
		}
		if m.RecipientID != nil {
			if _, ok := seenStudent[*m.RecipientID]; !ok {
				seenStudent[*m.RecipientID] = struct{}{}
				studentIDs = append(studentIDs, *m.RecipientID)
			}
		}
	}

	users, err := repo.GetUsersByID(ctx, s.DB, userIDs)
	if err != nil {
		return nil, err
	}
	students, err := repo.GetStudentsByID(ctx, s.DB, studentIDs)
	if err != nil {
		return nil, err
	}

	out := make([]EnrichedMessage, 0, len(msgs))
	for _, m := range msgs {
		var sender *domain.User
		if m.UserID != nil {
			if u, ok := users[*m.UserID]; ok {
				sender = &u
			}
		}
		var recipient *domain.Student
		if m.RecipientID != nil {
			if st, ok := students[*m.RecipientID]; ok {
				recipient = &st
			}
		}
		out = append(out, EnrichMessage(m, sender, recipient))
	}
	return out, nil
}
