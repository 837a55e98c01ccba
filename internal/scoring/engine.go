// Package scoring keeps each entry's derived signals (total votes, jury
// mean, overall score) consistent with the underlying vote and jury-score
// facts, and orders entries for leaderboard display.
package scoring

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/gab-ehcoud/hostStar/internal/store"
	"github.com/google/uuid"
)

var (
	ErrInvalidScore  = errors.New("score must be between 0 and 100")
	ErrInvalidStatus = errors.New("invalid entry status")
	ErrInvalidVoter  = errors.New("voter id is required")
	ErrInvalidEntry  = errors.New("entry id is required")
)

// Overall score blends the jury mean with the raw public vote count. The
// vote count is deliberately not normalized: this mirrors the original
// contest rules, where each public vote is worth 0.4 points.
const (
	juryWeight = 0.6
	voteWeight = 0.4
)

// Defaults used when an entry's owning user record is missing.
const (
	unknownHostName = "Unknown"
	defaultHostType = models.HostTypeTravel
)

// Engine maintains entry score projections over a record store.
type Engine struct {
	store store.Store
}

func NewEngine(st store.Store) *Engine {
	return &Engine{store: st}
}

// HostEntry is an entry joined with its owning host's display fields.
type HostEntry struct {
	models.Entry
	HostName string          `json:"host_name"`
	HostType models.HostType `json:"host_type"`
}

// RecordVote persists a vote fact and updates the entry's projections.
// The fact is written before the entry is loaded: a vote against a missing
// entry fails with store.ErrEntryNotFound but the fact remains, and the
// projection converges on the next successful write.
func (e *Engine) RecordVote(entryID uuid.UUID, voterID string) (int, error) {
	if entryID == uuid.Nil {
		return 0, ErrInvalidEntry
	}
	if voterID == "" {
		return 0, ErrInvalidVoter
	}

	vote := &models.Vote{
		ID:      uuid.New(),
		EntryID: entryID,
		VoterID: voterID,
		VotedAt: time.Now().UTC(),
	}
	if err := e.store.CreateVote(vote); err != nil {
		return 0, err
	}

	entry, err := e.store.EntryByID(entryID)
	if err != nil {
		return 0, err
	}

	// Recompute from the fact table rather than incrementing the stale
	// counter, so concurrent votes cannot lose updates.
	total, err := e.store.CountVotes(entryID)
	if err != nil {
		return 0, err
	}
	entry.TotalVotes = total
	entry.OverallScore = overallScore(entry.JuryScore, entry.TotalVotes)
	if err := e.store.SaveEntry(entry); err != nil {
		return 0, err
	}

	slog.Info("vote recorded", "entry_id", entryID, "total_votes", entry.TotalVotes)
	return entry.TotalVotes, nil
}

// RecordJuryScore upserts a juror's score for an entry (last write wins per
// juror) and recomputes the entry's jury mean and overall score.
func (e *Engine) RecordJuryScore(entryID, juryID uuid.UUID, score float64, feedback string) error {
	if entryID == uuid.Nil {
		return ErrInvalidEntry
	}
	if score < 0 || score > 100 {
		return ErrInvalidScore
	}

	fact := &models.JuryScore{
		ID:       uuid.New(),
		EntryID:  entryID,
		JuryID:   juryID,
		Score:    score,
		Feedback: feedback,
		ScoredAt: time.Now().UTC(),
	}
	if err := e.store.UpsertJuryScore(fact); err != nil {
		return err
	}

	entry, err := e.store.EntryByID(entryID)
	if err != nil {
		return err
	}

	scores, err := e.store.JuryScoresByEntry(entryID)
	if err != nil {
		return err
	}
	entry.JuryScore = juryMean(scores)
	entry.OverallScore = overallScore(entry.JuryScore, entry.TotalVotes)
	if err := e.store.SaveEntry(entry); err != nil {
		return err
	}

	slog.Info("jury score recorded",
		"entry_id", entryID, "jury_id", juryID, "jury_score", entry.JuryScore)
	return nil
}

// HasVoted reports whether a voter has already voted for an entry.
func (e *Engine) HasVoted(entryID uuid.UUID, voterID string) (bool, error) {
	return e.store.HasVoted(entryID, voterID)
}

// ListApproved returns approved entries with host display fields, ordered by
// overall score descending. An empty category means no filter; matching is
// exact and case-sensitive.
func (e *Engine) ListApproved(category models.Category) ([]HostEntry, error) {
	entries, err := e.store.ApprovedEntries(category)
	if err != nil {
		return nil, err
	}
	return e.withHosts(entries), nil
}

// Leaderboard returns the top-limit approved entries plus the total number
// of ranked entries before truncation.
func (e *Engine) Leaderboard(category models.Category, limit int) ([]HostEntry, int, error) {
	ranked, err := e.ListApproved(category)
	if err != nil {
		return nil, 0, err
	}
	total := len(ranked)
	if limit > 0 && limit < total {
		ranked = ranked[:limit]
	}
	return ranked, total, nil
}

// ListAll returns every entry regardless of status, newest first, with host
// display fields. Used by the admin review view.
func (e *Engine) ListAll() ([]HostEntry, error) {
	entries, err := e.store.AllEntries()
	if err != nil {
		return nil, err
	}
	return e.withHosts(entries), nil
}

// SetStatus moves an entry to the given review status. Transitions are
// unrestricted and never touch the score projections.
func (e *Engine) SetStatus(entryID uuid.UUID, status models.EntryStatus) (*models.Entry, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	entry, err := e.store.EntryByID(entryID)
	if err != nil {
		return nil, err
	}
	entry.Status = status
	if err := e.store.SaveEntry(entry); err != nil {
		return nil, err
	}
	slog.Info("entry status updated", "entry_id", entryID, "status", status)
	return entry, nil
}

func (e *Engine) withHosts(entries []models.Entry) []HostEntry {
	items := make([]HostEntry, 0, len(entries))
	for _, entry := range entries {
		item := HostEntry{
			Entry:    entry,
			HostName: unknownHostName,
			HostType: defaultHostType,
		}
		if user, err := e.store.UserByID(entry.UserID); err == nil {
			item.HostName = user.Name
			item.HostType = user.HostType
		}
		items = append(items, item)
	}
	return items
}

func overallScore(juryScore float64, totalVotes int) float64 {
	return juryScore*juryWeight + float64(totalVotes)*voteWeight
}

func juryMean(scores []models.JuryScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s.Score
	}
	return sum / float64(len(scores))
}
