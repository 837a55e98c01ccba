package dto

import (
	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/gab-ehcoud/hostStar/internal/scoring"
	"github.com/google/uuid"
)

type SubmitEntryRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	MediaURLs   []string        `json:"media_urls"`
	Category    models.Category `json:"category"`
}

type VoteRequest struct {
	EntryID uuid.UUID `json:"entry_id"`
	VoterID string    `json:"voter_id"`
}

type VoteResponse struct {
	Success    bool `json:"success"`
	TotalVotes int  `json:"total_votes"`
}

type HasVotedResponse struct {
	HasVoted bool `json:"has_voted"`
}

type JuryScoreRequest struct {
	EntryID  uuid.UUID `json:"entry_id"`
	Score    float64   `json:"score"`
	Feedback string    `json:"feedback"`
}

type StatusUpdateRequest struct {
	Status models.EntryStatus `json:"status"`
}

type EntryListResponse struct {
	Entries []scoring.HostEntry `json:"entries"`
}

type LeaderboardResponse struct {
	Leaderboard []scoring.HostEntry `json:"leaderboard"`
	Total       int                 `json:"total"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
