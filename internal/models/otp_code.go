package models

import (
	"time"

	"github.com/google/uuid"
)

// OTPCode holds the bcrypt hash of the latest login code issued for a phone
// number. One pending code per phone; issuing a new code replaces it.
type OTPCode struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Phone     string    `gorm:"size:20;not null;uniqueIndex" json:"phone"`
	CodeHash  string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
