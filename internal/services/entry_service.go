package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/gab-ehcoud/hostStar/internal/dto"
	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/gab-ehcoud/hostStar/internal/scoring"
	"github.com/gab-ehcoud/hostStar/internal/store"
	"github.com/google/uuid"
)

var (
	ErrMissingFields   = errors.New("title, description and at least one media url are required")
	ErrContentRejected = errors.New("content rejected by moderation")
)

type EntryService struct {
	store      store.Store
	moderation *ModerationService
}

func NewEntryService(st store.Store, moderation *ModerationService) *EntryService {
	return &EntryService{store: st, moderation: moderation}
}

// Submit creates a new entry in pending status with zeroed scores.
func (s *EntryService) Submit(userID uuid.UUID, req *dto.SubmitEntryRequest) (*models.Entry, error) {
	if req.Title == "" || req.Description == "" || len(req.MediaURLs) == 0 {
		return nil, ErrMissingFields
	}

	category := req.Category
	if category == "" {
		category = models.CategoryGeneral
	}
	if !category.Valid() {
		return nil, fmt.Errorf("invalid category %q", category)
	}

	for _, text := range []string{req.Title, req.Description} {
		if ok, reason := s.moderation.FilterContent(text); !ok {
			return nil, fmt.Errorf("%w: %s", ErrContentRejected, reason)
		}
	}

	entry := models.Entry{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		MediaURLs:   req.MediaURLs,
		Category:    category,
		Status:      models.StatusPending,
		UploadedAt:  time.Now().UTC(),
	}

	if err := s.store.CreateEntry(&entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return &entry, nil
}

// EntryDetail is the single-entry view, which exposes the host's email in
// addition to the list projection fields.
type EntryDetail struct {
	scoring.HostEntry
	HostEmail string `json:"host_email,omitempty"`
}

func (s *EntryService) Get(entryID uuid.UUID) (*EntryDetail, error) {
	entry, err := s.store.EntryByID(entryID)
	if err != nil {
		return nil, err
	}

	detail := EntryDetail{
		HostEntry: scoring.HostEntry{
			Entry:    *entry,
			HostName: "Unknown",
			HostType: models.HostTypeTravel,
		},
	}
	if user, err := s.store.UserByID(entry.UserID); err == nil {
		detail.HostName = user.Name
		detail.HostType = user.HostType
		detail.HostEmail = user.Email
	}

	return &detail, nil
}

func (s *EntryService) UserEntries(userID uuid.UUID) ([]models.Entry, error) {
	return s.store.EntriesByUser(userID)
}
