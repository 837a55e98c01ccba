package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Category is the closed set of contest categories.
type Category string

const (
	CategoryGeneral    Category = "general"
	CategoryAdventure  Category = "adventure"
	CategoryCulture    Category = "culture"
	CategoryFood       Category = "food"
	CategoryStay       Category = "stay"
	CategoryExperience Category = "experience"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryGeneral, CategoryAdventure, CategoryCulture,
		CategoryFood, CategoryStay, CategoryExperience:
		return true
	}
	return false
}

// EntryStatus is the admin-controlled review state. Any state may transition
// to any other; there is no terminal state.
type EntryStatus string

const (
	StatusPending  EntryStatus = "pending"
	StatusApproved EntryStatus = "approved"
	StatusRejected EntryStatus = "rejected"
)

func (s EntryStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Entry is a contest submission. TotalVotes, JuryScore and OverallScore are
// materialized projections of the Vote and JuryScore fact tables, maintained
// by the scoring engine.
type Entry struct {
	ID           uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string                      `gorm:"size:255;not null" json:"title"`
	Description  string                      `gorm:"type:text;not null" json:"description"`
	MediaURLs    datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"media_urls"`
	Category     Category                    `gorm:"size:50;not null;default:'general';index" json:"category"`
	Status       EntryStatus                 `gorm:"size:20;not null;default:'pending';index" json:"status"`
	TotalVotes   int                         `gorm:"not null;default:0" json:"total_votes"`
	JuryScore    float64                     `gorm:"not null;default:0" json:"jury_score"`
	OverallScore float64                     `gorm:"not null;default:0;index" json:"overall_score"`
	UploadedAt   time.Time                   `gorm:"not null;index" json:"uploaded_at"`
}
