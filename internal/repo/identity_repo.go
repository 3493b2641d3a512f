// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides batched lookups against the identity
// tables used for display-name enrichment on the read path.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/edulane/go-classchat-backend/internal/domain"
)

// GetUsersByID fetches the users with the given ids and returns them keyed
// by id. Ids with no matching row are simply absent from the map; a missing
// join row is a valid state (the referenced user may have been removed) and
// is handled deterministically by the enricher, not here.
func GetUsersByID(ctx context.Context, db *gorm.DB, ids []string) (map[string]domain.User, error) {
	out := make(map[string]domain.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []domain.User
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, u := range rows {
		out[u.ID] = u
	}
	return out, nil
}

// GetStudentsByID fetches the students with the given ids, keyed by id.
// Same missing-row semantics as GetUsersByID.
func GetStudentsByID(ctx context.Context, db *gorm.DB, ids []string) (map[string]domain.Student, error) {
	out := make(map[string]domain.Student, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []domain.Student
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, s := range rows {
		out[s.ID] = s
	}
	return out, nil
}
