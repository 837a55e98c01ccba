package store

import (
	"errors"

	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrPhoneTaken    = errors.New("phone number already registered")
	ErrEntryNotFound = errors.New("entry not found")
	ErrDuplicateVote = errors.New("already voted for this entry")
	ErrTokenNotFound = errors.New("refresh token not found")
	ErrOTPNotFound   = errors.New("no pending code for this phone")
)

// Store is the record store behind every operation. Both implementations
// (Postgres via GORM, in-memory for tests) enforce the same key-uniqueness
// invariants: one user per phone, one vote per (entry, voter), one jury
// score per (entry, juror).
type Store interface {
	// Users
	CreateUser(user *models.User) error
	UserByPhone(phone string) (*models.User, error)
	UserByID(id uuid.UUID) (*models.User, error)

	// Refresh tokens
	SaveRefreshToken(token *models.RefreshToken) error
	RefreshTokenByHash(hash string) (*models.RefreshToken, error)
	RevokeRefreshToken(hash string) error

	// OTP codes (one pending code per phone, replaced on reissue)
	SaveOTPCode(code *models.OTPCode) error
	OTPCodeByPhone(phone string) (*models.OTPCode, error)
	DeleteOTPCode(phone string) error

	// Entries
	CreateEntry(entry *models.Entry) error
	EntryByID(id uuid.UUID) (*models.Entry, error)
	SaveEntry(entry *models.Entry) error
	EntriesByUser(userID uuid.UUID) ([]models.Entry, error)
	// ApprovedEntries returns approved entries, optionally restricted to an
	// exact category, ordered by overall score descending with upload time
	// ascending as the deterministic tie-break.
	ApprovedEntries(category models.Category) ([]models.Entry, error)
	// AllEntries returns every entry regardless of status, newest first.
	AllEntries() ([]models.Entry, error)

	// Vote facts
	CreateVote(vote *models.Vote) error
	HasVoted(entryID uuid.UUID, voterID string) (bool, error)
	CountVotes(entryID uuid.UUID) (int, error)

	// Jury score facts
	UpsertJuryScore(score *models.JuryScore) error
	JuryScoresByEntry(entryID uuid.UUID) ([]models.JuryScore, error)
}
