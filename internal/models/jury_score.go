package models

import (
	"time"

	"github.com/google/uuid"
)

// JuryScore is one juror's evaluation of one entry. The composite unique
// index enforces one score per (entry, juror); a resubmission by the same
// juror replaces the prior value wholesale.
type JuryScore struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EntryID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_jury_scores_entry_juror" json:"entry_id"`
	JuryID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_jury_scores_entry_juror" json:"jury_id"`
	Score    float64   `gorm:"not null" json:"score"`
	Feedback string    `gorm:"type:text" json:"feedback"`
	ScoredAt time.Time `gorm:"not null" json:"scored_at"`
}
