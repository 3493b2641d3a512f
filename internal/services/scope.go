// Package services – scope resolution
//
// This file implements the scope-resolution core: given a message being
// created or a listing being issued, determine the correct visibility
// boundary (a single batch, a merged group of batches, or an individual
// recipient thread inside a batch) and express it as a store filter.
//
// The write path and the read path are deliberately asymmetric:
//   - writes snapshot the batch's merge group at creation time and persist it
//     on the message (ScopeAssigner);
//   - batch-wide reads resolve the merge group live at read time
//     (VisibilityQueryBuilder);
//   - individual reads never consult merge state at all.
//
// The asymmetry is inherited behavior for existing data and must not be
// "fixed" by re-resolving old snapshots at read time.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/edulane/go-classchat-backend/internal/repo"
)

// MergeGroupResolver reports the merge group a batch currently belongs to,
// or nil when the batch is not merged. Implementations surface store errors
// verbatim and fail (rather than pick a row) when the at-most-one membership
// contract is violated.
type MergeGroupResolver interface {
	Resolve(ctx context.Context, batchID string) (*string, error)
}

// StoreMergeGroupResolver is the GORM-backed MergeGroupResolver. It is a
// pure lookup with no mutation.
type StoreMergeGroupResolver struct {
	DB *gorm.DB
}

// Resolve looks up the membership row for exactly this batch.
func (r StoreMergeGroupResolver) Resolve(ctx context.Context, batchID string) (*string, error) {
	return repo.GetMergeGroupID(ctx, r.DB, batchID)
}

// ScopeAssigner computes the immutable merge-group tag persisted with a new
// message at creation time.
type ScopeAssigner struct {
	Resolver MergeGroupResolver
}

// Assign returns the merge-group id to store on a new message.
//
// Individual messages (recipientID non-nil) get nil unconditionally and no
// resolver call is made: individual threads are always scoped strictly to
// their originating batch. Batch-wide messages snapshot the batch's current
// membership; the value never changes afterwards.
func (a ScopeAssigner) Assign(ctx context.Context, batchID string, recipientID *string) (*string, error) {
	if recipientID != nil {
		return nil, nil
	}
	return a.Resolver.Resolve(ctx, batchID)
}

// VisibilityQueryBuilder computes the exact filter that selects the visible
// message set for a listing.
type VisibilityQueryBuilder struct {
	Resolver MergeGroupResolver
}

// Build returns the visibility filter for (batchID, recipientID).
//
// Individual mode (recipientID non-nil): messages of the batch addressed to
// that recipient plus the batch's own batch-wide messages. Merge-group
// membership is intentionally ignored, so an individual viewer never sees
// batch-wide traffic filed under sibling batches of a merged group.
//
// Batch-wide mode (recipientID nil): the batch's current merge group is
// resolved live. When a group exists the filter selects batch-wide messages
// across the whole group (matching on the snapshot stored at write time);
// otherwise it selects the batch's own batch-wide messages.
func (b VisibilityQueryBuilder) Build(ctx context.Context, batchID string, recipientID *string) (repo.MessageFilter, error) {
	f := repo.MessageFilter{BatchID: batchID}
	if recipientID != nil {
		f.RecipientID = recipientID
		return f, nil
	}
	group, err := b.Resolver.Resolve(ctx, batchID)
	if err != nil {
		return repo.MessageFilter{}, err
	}
	f.MergeGroupID = group
	return f, nil
}
