package store

import (
	"sort"
	"sync"

	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/google/uuid"
)

type memoryEntry struct {
	entry models.Entry
	seq   int
}

// Memory is an in-process Store used by tests and local tooling. Uniqueness
// invariants are enforced on the same keys as the SQL schema.
type Memory struct {
	mu sync.RWMutex

	users   map[uuid.UUID]models.User
	byPhone map[string]uuid.UUID

	tokens map[string]models.RefreshToken
	otps   map[string]models.OTPCode

	entries map[uuid.UUID]*memoryEntry
	nextSeq int

	votes map[uuid.UUID]map[string]models.Vote
	jury  map[uuid.UUID]map[uuid.UUID]models.JuryScore
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[uuid.UUID]models.User),
		byPhone: make(map[string]uuid.UUID),
		tokens:  make(map[string]models.RefreshToken),
		otps:    make(map[string]models.OTPCode),
		entries: make(map[uuid.UUID]*memoryEntry),
		votes:   make(map[uuid.UUID]map[string]models.Vote),
		jury:    make(map[uuid.UUID]map[uuid.UUID]models.JuryScore),
	}
}

func (m *Memory) CreateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.byPhone[user.Phone]; taken {
		return ErrPhoneTaken
	}
	m.users[user.ID] = *user
	m.byPhone[user.Phone] = user.ID
	return nil
}

func (m *Memory) UserByPhone(phone string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byPhone[phone]
	if !ok {
		return nil, ErrUserNotFound
	}
	user := m.users[id]
	return &user, nil
}

func (m *Memory) UserByID(id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (m *Memory) SaveRefreshToken(token *models.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token.TokenHash] = *token
	return nil
}

func (m *Memory) RefreshTokenByHash(hash string) (*models.RefreshToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	token, ok := m.tokens[hash]
	if !ok {
		return nil, ErrTokenNotFound
	}
	return &token, nil
}

func (m *Memory) RevokeRefreshToken(hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	token, ok := m.tokens[hash]
	if !ok {
		return ErrTokenNotFound
	}
	token.Revoked = true
	m.tokens[hash] = token
	return nil
}

func (m *Memory) SaveOTPCode(code *models.OTPCode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otps[code.Phone] = *code
	return nil
}

func (m *Memory) OTPCodeByPhone(phone string) (*models.OTPCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	code, ok := m.otps[phone]
	if !ok {
		return nil, ErrOTPNotFound
	}
	return &code, nil
}

func (m *Memory) DeleteOTPCode(phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.otps, phone)
	return nil
}

func (m *Memory) CreateEntry(entry *models.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextSeq++
	m.entries[entry.ID] = &memoryEntry{entry: *entry, seq: m.nextSeq}
	return nil
}

func (m *Memory) EntryByID(id uuid.UUID) (*models.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored, ok := m.entries[id]
	if !ok {
		return nil, ErrEntryNotFound
	}
	entry := stored.entry
	return &entry, nil
}

func (m *Memory) SaveEntry(entry *models.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.entries[entry.ID]
	if !ok {
		return ErrEntryNotFound
	}
	stored.entry = *entry
	return nil
}

func (m *Memory) EntriesByUser(userID uuid.UUID) ([]models.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := make([]*memoryEntry, 0)
	for _, e := range m.entries {
		if e.entry.UserID == userID {
			stored = append(stored, e)
		}
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].seq > stored[j].seq })
	items := make([]models.Entry, 0, len(stored))
	for _, e := range stored {
		items = append(items, e.entry)
	}
	return items, nil
}

func (m *Memory) ApprovedEntries(category models.Category) ([]models.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := make([]*memoryEntry, 0)
	for _, e := range m.entries {
		if e.entry.Status != models.StatusApproved {
			continue
		}
		if category != "" && e.entry.Category != category {
			continue
		}
		stored = append(stored, e)
	}
	// Insertion sequence breaks ties, matching the SQL tie-break semantics.
	sort.Slice(stored, func(i, j int) bool {
		if stored[i].entry.OverallScore != stored[j].entry.OverallScore {
			return stored[i].entry.OverallScore > stored[j].entry.OverallScore
		}
		if !stored[i].entry.UploadedAt.Equal(stored[j].entry.UploadedAt) {
			return stored[i].entry.UploadedAt.Before(stored[j].entry.UploadedAt)
		}
		return stored[i].seq < stored[j].seq
	})
	items := make([]models.Entry, 0, len(stored))
	for _, e := range stored {
		items = append(items, e.entry)
	}
	return items, nil
}

func (m *Memory) AllEntries() ([]models.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := make([]*memoryEntry, 0, len(m.entries))
	for _, e := range m.entries {
		stored = append(stored, e)
	}
	sort.Slice(stored, func(i, j int) bool {
		if !stored[i].entry.UploadedAt.Equal(stored[j].entry.UploadedAt) {
			return stored[i].entry.UploadedAt.After(stored[j].entry.UploadedAt)
		}
		return stored[i].seq > stored[j].seq
	})
	items := make([]models.Entry, 0, len(stored))
	for _, e := range stored {
		items = append(items, e.entry)
	}
	return items, nil
}

func (m *Memory) CreateVote(vote *models.Vote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	byVoter, ok := m.votes[vote.EntryID]
	if !ok {
		byVoter = make(map[string]models.Vote)
		m.votes[vote.EntryID] = byVoter
	}
	if _, exists := byVoter[vote.VoterID]; exists {
		return ErrDuplicateVote
	}
	byVoter[vote.VoterID] = *vote
	return nil
}

func (m *Memory) HasVoted(entryID uuid.UUID, voterID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.votes[entryID][voterID]
	return ok, nil
}

func (m *Memory) CountVotes(entryID uuid.UUID) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.votes[entryID]), nil
}

func (m *Memory) UpsertJuryScore(score *models.JuryScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	byJuror, ok := m.jury[score.EntryID]
	if !ok {
		byJuror = make(map[uuid.UUID]models.JuryScore)
		m.jury[score.EntryID] = byJuror
	}
	byJuror[score.JuryID] = *score
	return nil
}

func (m *Memory) JuryScoresByEntry(entryID uuid.UUID) ([]models.JuryScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	scores := make([]models.JuryScore, 0, len(m.jury[entryID]))
	for _, s := range m.jury[entryID] {
		scores = append(scores, s)
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].ScoredAt.Before(scores[j].ScoredAt) })
	return scores, nil
}
