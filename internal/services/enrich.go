// Package services – identity enrichment
//
// This file derives display names for listed messages from the users and
// students tables. Enrichment is read-path-only; it never affects persisted
// data, and the raw join rows are never included in the output.
package services

import "github.com/edulane/go-classchat-backend/internal/domain"

// fallbackName is used when a join row exists but carries no usable name.
const fallbackName = "Unknown"

// EnrichedMessage is a ChatMessage joined with denormalized display names.
//
// SenderName is nil when the message has no sender user or the referenced
// user no longer exists; RecipientName is nil when no recipient was targeted
// or the referenced student no longer exists. When a join row is found but
// lacks a name, the literal "Unknown" is used instead.
type EnrichedMessage struct {
	domain.ChatMessage
	SenderName    *string `json:"sender_name"`
	RecipientName *string `json:"recipient_name"`
}

// EnrichMessage joins a raw message row with its optional sender and
// recipient identity rows. Absent join rows are a valid state and yield nil
// names, deterministically.
func EnrichMessage(m domain.ChatMessage, sender *domain.User, recipient *domain.Student) EnrichedMessage {
	out := EnrichedMessage{ChatMessage: m}
	if sender != nil {
		name := sender.FullName
		if name == "" {
			name = sender.Name
		}
		if name == "" {
			name = fallbackName
		}
		out.SenderName = &name
	}
	if recipient != nil {
		name := recipient.Name
		if name == "" {
			name = fallbackName
		}
		out.RecipientName = &name
	}
	return out
}
