// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ChatMessage model.
//
// Error semantics:
//   - GetMessage returns ErrNotFound (gorm.ErrRecordNotFound) when the row
//     does not exist.
//   - UpdateMessageText and DeleteMessage report the affected-row count so
//     callers can distinguish "changed" from "nothing matched"; they do not
//     themselves treat zero rows as an error.
//   - On other DB errors the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edulane/go-classchat-backend/internal/domain"
)

// MessageFilter is the visibility predicate for a message listing. Exactly
// one of the three shapes applies:
//
//   - RecipientID set: individual mode. Selects messages in BatchID addressed
//     to that recipient plus batch-wide messages of the same batch.
//     MergeGroupID is ignored; individual threads are always batch-local.
//   - MergeGroupID set (RecipientID nil): merged batch-wide mode. Selects
//     batch-wide messages across the whole group.
//   - Neither set: plain batch-wide mode for a single unmerged batch.
type MessageFilter struct {
	BatchID      string
	MergeGroupID *string
	RecipientID  *string
}

// CreateMessage inserts a new message row and returns the persisted record.
// The id is a fresh UUID and CreatedAt is set to UTC now; the store is the
// arbiter of durability, no transaction wraps the caller's preceding
// membership read.
func CreateMessage(ctx context.Context, db *gorm.DB, text, batchID, sender string, mergeGroupID, userID, recipientID *string) (*domain.ChatMessage, error) {
	m := &domain.ChatMessage{
		ID:           uuid.NewString(),
		Text:         text,
		BatchID:      batchID,
		MergeGroupID: mergeGroupID,
		Sender:       sender,
		UserID:       userID,
		RecipientID:  recipientID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessages returns the messages selected by the filter, ordered
// deterministically (CreatedAt ASC, ID ASC as a stable tiebreak). The result
// is never nil.
func ListMessages(ctx context.Context, db *gorm.DB, f MessageFilter) ([]domain.ChatMessage, error) {
	q := db.WithContext(ctx).Model(&domain.ChatMessage{})

	switch {
	case f.RecipientID != nil:
		q = q.Where("batch_id = ?", f.BatchID).
			Where("recipient_id = ? OR recipient_id IS NULL", *f.RecipientID)
	case f.MergeGroupID != nil:
		q = q.Where("merge_group_id = ?", *f.MergeGroupID).
			Where("recipient_id IS NULL")
	default:
		q = q.Where("batch_id = ?", f.BatchID).
			Where("recipient_id IS NULL")
	}

	out := make([]domain.ChatMessage, 0)
	err := q.Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

// GetMessage fetches a message by ID, or ErrNotFound.
func GetMessage(ctx context.Context, db *gorm.DB, id string) (*domain.ChatMessage, error) {
	var m domain.ChatMessage
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMessageText sets a new text body on the message with the given id
// and returns the number of rows affected (0 when no such row exists).
// No other field is mutable through this path; GORM bumps UpdatedAt.
func UpdateMessageText(ctx context.Context, db *gorm.DB, id, text string) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.ChatMessage{}).
		Where("id = ?", id).
		Update("text", text)
	return res.RowsAffected, res.Error
}

// DeleteMessage permanently removes the message with the given id and
// returns the number of rows affected (0 when no such row exists).
func DeleteMessage(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	res := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.ChatMessage{})
	return res.RowsAffected, res.Error
}
