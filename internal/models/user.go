package models

import (
	"time"

	"github.com/google/uuid"
)

// HostType is the closed set of host categories.
type HostType string

const (
	HostTypeTravel  HostType = "travel"
	HostTypeService HostType = "service"
)

func (t HostType) Valid() bool {
	switch t {
	case HostTypeTravel, HostTypeService:
		return true
	}
	return false
}

// Role controls access to jury and admin routes.
type Role string

const (
	RoleHost  Role = "host"
	RoleJury  Role = "jury"
	RoleAdmin Role = "admin"
)

// User is a registered host. Phone is the natural key: one account per phone.
type User struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Phone           string    `gorm:"size:20;not null;uniqueIndex" json:"phone"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Email           string    `gorm:"size:255" json:"email"`
	HostType        HostType  `gorm:"size:20;not null" json:"host_type"`
	Role            Role      `gorm:"size:20;default:'host'" json:"role"`
	KYCVerified     bool      `gorm:"default:false" json:"kyc_verified"`
	ProfileComplete bool      `gorm:"default:false" json:"profile_complete"`
	CreatedAt       time.Time `json:"created_at"`
}
