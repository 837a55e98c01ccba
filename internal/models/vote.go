package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a single public vote. The composite unique index enforces the
// one-vote-per-(entry, voter) invariant at write time. Votes are append-only.
type Vote struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EntryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_entry_voter" json:"entry_id"`
	VoterID string    `gorm:"size:255;not null;uniqueIndex:idx_votes_entry_voter" json:"voter_id"`
	VotedAt time.Time `gorm:"not null" json:"voted_at"`
}
