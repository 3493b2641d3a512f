// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the merge-group membership lookup.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/edulane/go-classchat-backend/internal/domain"
)

// ErrAmbiguousMembership is returned when more than one merge-group row
// exists for a single batch. Membership is an at-most-one relation; a
// multi-row result has no deterministic answer and the enclosing operation
// must fail rather than pick a row arbitrarily.
var ErrAmbiguousMembership = errors.New("batch has multiple merge-group memberships")

// GetMergeGroupID returns the merge group the batch currently belongs to,
// or nil when the batch is not merged.
//
// The lookup probes for up to two rows so an invariant violation (two or
// more memberships for one batch) is detected instead of silently taking
// whichever row the store returns first.
func GetMergeGroupID(ctx context.Context, db *gorm.DB, batchID string) (*string, error) {
	var rows []domain.BatchMergeMember
	err := db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Limit(2).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		g := rows[0].MergeGroupID
		return &g, nil
	default:
		return nil, ErrAmbiguousMembership
	}
}
