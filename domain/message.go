// Package domain contains the core concepts of the message board.
// This file defines the stored message record.
// Messages are immutable once accepted and are never deleted here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an accepted, persisted submission.
// EmailHash is the only trace of the submitter and is a keyed one-way
// digest; the raw email or IP never reaches this type.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"msg"`
	CreatedAt time.Time `json:"ts"`
	EmailHash string    `json:"email_hash,omitempty"`
	Country   string    `json:"country,omitempty"`
	Lang      string    `json:"lang,omitempty"`
}
