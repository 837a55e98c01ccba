package scoring

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/gab-ehcoud/hostStar/internal/store"
	"github.com/google/uuid"
)

const epsilon = 1e-9

func newTestEngine(t *testing.T) (*Engine, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	return NewEngine(st), st
}

func seedEntry(t *testing.T, st *store.Memory, status models.EntryStatus, category models.Category, uploadedAt time.Time) *models.Entry {
	t.Helper()
	entry := &models.Entry{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Title:       "Sunset kayak tour",
		Description: "Guided paddle through the mangroves",
		Category:    category,
		Status:      status,
		UploadedAt:  uploadedAt,
	}
	if err := st.CreateEntry(entry); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	return entry
}

func approvedEntry(t *testing.T, st *store.Memory) *models.Entry {
	t.Helper()
	return seedEntry(t, st, models.StatusApproved, models.CategoryGeneral, time.Now().UTC())
}

func currentEntry(t *testing.T, st *store.Memory, id uuid.UUID) *models.Entry {
	t.Helper()
	entry, err := st.EntryByID(id)
	if err != nil {
		t.Fatalf("EntryByID: %v", err)
	}
	return entry
}

func closeTo(got, want float64) bool {
	return math.Abs(got-want) < epsilon
}

func TestRecordVoteUpdatesProjections(t *testing.T) {
	engine, st := newTestEngine(t)
	entry := approvedEntry(t, st)

	total, err := engine.RecordVote(entry.ID, "voter-1")
	if err != nil {
		t.Fatalf("RecordVote: %v", err)
	}
	if total != 1 {
		t.Errorf("total votes = %d, want 1", total)
	}

	got := currentEntry(t, st, entry.ID)
	if !closeTo(got.OverallScore, 0.4) {
		t.Errorf("overall score = %v, want 0.4", got.OverallScore)
	}
}

func TestOverallScoreFormulaHolds(t *testing.T) {
	engine, st := newTestEngine(t)
	entry := approvedEntry(t, st)
	juror := uuid.New()

	if err := engine.RecordJuryScore(entry.ID, juror, 73.5, ""); err != nil {
		t.Fatalf("RecordJuryScore: %v", err)
	}
	for i := 0; i < 7; i++ {
		if _, err := engine.RecordVote(entry.ID, fmt.Sprintf("voter-%d", i)); err != nil {
			t.Fatalf("RecordVote %d: %v", i, err)
		}
		got := currentEntry(t, st, entry.ID)
		want := got.JuryScore*0.6 + float64(got.TotalVotes)*0.4
		if got.OverallScore != want {
			t.Errorf("after vote %d: overall = %v, want %v", i+1, got.OverallScore, want)
		}
	}
}

func TestDuplicateVoteRejected(t *testing.T) {
	engine, st := newTestEngine(t)
	entry := approvedEntry(t, st)

	if _, err := engine.RecordVote(entry.ID, "voter-1"); err != nil {
		t.Fatalf("first vote: %v", err)
	}
	_, err := engine.RecordVote(entry.ID, "voter-1")
	if !errors.Is(err, store.ErrDuplicateVote) {
		t.Fatalf("second vote err = %v, want ErrDuplicateVote", err)
	}

	got := currentEntry(t, st, entry.ID)
	if got.TotalVotes != 1 {
		t.Errorf("total votes = %d, want 1 after rejected duplicate", got.TotalVotes)
	}
}

func TestVoteRequiresVoterID(t *testing.T) {
	engine, st := newTestEngine(t)
	entry := approvedEntry(t, st)

	if _, err := engine.RecordVote(entry.ID, ""); !errors.Is(err, ErrInvalidVoter) {
		t.Fatalf("err = %v, want ErrInvalidVoter", err)
	}
}

// A zero entry id (what a request body without entry_id decodes to) must fail
// validation before any fact is written.
func TestVoteRequiresEntryID(t *testing.T) {
	engine, _ := newTestEngine(t)

	if _, err := engine.RecordVote(uuid.Nil, "voter-1"); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("err = %v, want ErrInvalidEntry", err)
	}

	voted, err := engine.HasVoted(uuid.Nil, "voter-1")
	if err != nil {
		t.Fatalf("HasVoted: %v", err)
	}
	if voted {
		t.Error("a vote fact was written under the zero entry id")
	}
}

func TestJuryScoreRequiresEntryID(t *testing.T) {
	engine, st := newTestEngine(t)

	if err := engine.RecordJuryScore(uuid.Nil, uuid.New(), 80, ""); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("err = %v, want ErrInvalidEntry", err)
	}

	scores, err := st.JuryScoresByEntry(uuid.Nil)
	if err != nil {
		t.Fatalf("JuryScoresByEntry: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("jury facts under the zero entry id: %+v", scores)
	}
}

// A vote against a missing entry fails, but the vote fact is already
// recorded by then and remains behind.
func TestVoteOnMissingEntryLeavesFact(t *testing.T) {
	engine, _ := newTestEngine(t)
	missing := uuid.New()

	_, err := engine.RecordVote(missing, "voter-1")
	if !errors.Is(err, store.ErrEntryNotFound) {
		t.Fatalf("err = %v, want ErrEntryNotFound", err)
	}

	voted, err := engine.HasVoted(missing, "voter-1")
	if err != nil {
		t.Fatalf("HasVoted: %v", err)
	}
	if !voted {
		t.Error("vote fact was not recorded before the entry lookup failed")
	}
}

func TestJuryMeanOverDistinctJurors(t *testing.T) {
	engine, st := newTestEngine(t)
	entry := approvedEntry(t, st)

	scores := []float64{60, 75, 90}
	for _, s := range scores {
		if err := engine.RecordJuryScore(entry.ID, uuid.New(), s, "solid"); err != nil {
			t.Fatalf("RecordJuryScore(%v): %v", s, err)
		}
	}

	got := currentEntry(t, st, entry.ID)
	if !closeTo(got.JuryScore, 75) {
		t.Errorf("jury score = %v, want 75", got.JuryScore)
	}
}

func TestJurorResubmitReplacesScore(t *testing.T) {
	engine, st := newTestEngine(t)
	entry := approvedEntry(t, st)
	juror := uuid.New()
	other := uuid.New()

	if err := engine.RecordJuryScore(entry.ID, juror, 80, ""); err != nil {
		t.Fatalf("first score: %v", err)
	}
	if err := engine.RecordJuryScore(entry.ID, other, 100, ""); err != nil {
		t.Fatalf("other juror: %v", err)
	}
	if err := engine.RecordJuryScore(entry.ID, juror, 40, "revised"); err != nil {
		t.Fatalf("resubmit: %v", err)
	}

	got := currentEntry(t, st, entry.ID)
	if !closeTo(got.JuryScore, 70) {
		t.Errorf("jury score = %v, want 70 (mean of 40 and 100)", got.JuryScore)
	}
}

func TestJuryScoreRangeValidated(t *testing.T) {
	engine, st := newTestEngine(t)
	entry := approvedEntry(t, st)

	for _, s := range []float64{-0.5, 100.5, 1000} {
		if err := engine.RecordJuryScore(entry.ID, uuid.New(), s, ""); !errors.Is(err, ErrInvalidScore) {
			t.Errorf("score %v: err = %v, want ErrInvalidScore", s, err)
		}
	}

	got := currentEntry(t, st, entry.ID)
	if got.JuryScore != 0 {
		t.Errorf("jury score = %v, want 0 after rejected submissions", got.JuryScore)
	}
}

func TestJuryScoreBoundsAccepted(t *testing.T) {
	engine, st := newTestEngine(t)
	entry := approvedEntry(t, st)

	if err := engine.RecordJuryScore(entry.ID, uuid.New(), 0, ""); err != nil {
		t.Fatalf("score 0: %v", err)
	}
	if err := engine.RecordJuryScore(entry.ID, uuid.New(), 100, ""); err != nil {
		t.Fatalf("score 100: %v", err)
	}

	got := currentEntry(t, st, entry.ID)
	if !closeTo(got.JuryScore, 50) {
		t.Errorf("jury score = %v, want 50", got.JuryScore)
	}
}

// Walks the worked example: one juror at 90 gives overall 54.0, one vote
// lifts it to 54.4, a second juror at 70 pulls the mean to 80 and the
// overall to 48.4.
func TestScoringScenario(t *testing.T) {
	engine, st := newTestEngine(t)
	entry := approvedEntry(t, st)
	firstJuror := uuid.New()

	if err := engine.RecordJuryScore(entry.ID, firstJuror, 90, ""); err != nil {
		t.Fatalf("juror 1: %v", err)
	}
	if got := currentEntry(t, st, entry.ID); !closeTo(got.OverallScore, 54.0) {
		t.Errorf("overall = %v, want 54.0", got.OverallScore)
	}

	if _, err := engine.RecordVote(entry.ID, "voter-1"); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if got := currentEntry(t, st, entry.ID); !closeTo(got.OverallScore, 54.4) {
		t.Errorf("overall = %v, want 54.4", got.OverallScore)
	}

	if err := engine.RecordJuryScore(entry.ID, uuid.New(), 70, ""); err != nil {
		t.Fatalf("juror 2: %v", err)
	}
	got := currentEntry(t, st, entry.ID)
	if !closeTo(got.JuryScore, 80) {
		t.Errorf("jury score = %v, want 80", got.JuryScore)
	}
	if !closeTo(got.OverallScore, 48.4) {
		t.Errorf("overall = %v, want 48.4", got.OverallScore)
	}
}

func TestListApprovedFiltersAndOrders(t *testing.T) {
	engine, st := newTestEngine(t)
	base := time.Now().UTC()

	low := seedEntry(t, st, models.StatusApproved, models.CategoryGeneral, base)
	high := seedEntry(t, st, models.StatusApproved, models.CategoryGeneral, base.Add(time.Minute))
	seedEntry(t, st, models.StatusPending, models.CategoryGeneral, base)
	seedEntry(t, st, models.StatusRejected, models.CategoryGeneral, base)

	if err := engine.RecordJuryScore(low.ID, uuid.New(), 50, ""); err != nil {
		t.Fatalf("score low: %v", err)
	}
	if err := engine.RecordJuryScore(high.ID, uuid.New(), 90, ""); err != nil {
		t.Fatalf("score high: %v", err)
	}

	entries, err := engine.ListApproved("")
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2 (pending and rejected excluded)", len(entries))
	}
	if entries[0].ID != high.ID || entries[1].ID != low.ID {
		t.Errorf("order = [%v %v], want highest overall first", entries[0].ID, entries[1].ID)
	}
}

func TestListApprovedCategoryFilterIsExact(t *testing.T) {
	engine, st := newTestEngine(t)
	base := time.Now().UTC()

	food := seedEntry(t, st, models.StatusApproved, models.CategoryFood, base)
	seedEntry(t, st, models.StatusApproved, models.CategoryCulture, base)

	entries, err := engine.ListApproved(models.CategoryFood)
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != food.ID {
		t.Fatalf("category filter returned %d entries, want exactly the food entry", len(entries))
	}
}

func TestTiedScoresOrderByUploadTime(t *testing.T) {
	engine, st := newTestEngine(t)
	base := time.Now().UTC()

	later := seedEntry(t, st, models.StatusApproved, models.CategoryGeneral, base.Add(time.Hour))
	earlier := seedEntry(t, st, models.StatusApproved, models.CategoryGeneral, base)

	entries, err := engine.ListApproved("")
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}
	if entries[0].ID != earlier.ID || entries[1].ID != later.ID {
		t.Errorf("tied entries not ordered by upload time ascending")
	}
}

func TestLeaderboardTruncatesButCountsAll(t *testing.T) {
	engine, st := newTestEngine(t)
	base := time.Now().UTC()

	for i, score := range []float64{90, 80, 70} {
		entry := seedEntry(t, st, models.StatusApproved, models.CategoryGeneral, base.Add(time.Duration(i)*time.Minute))
		if err := engine.RecordJuryScore(entry.ID, uuid.New(), score, ""); err != nil {
			t.Fatalf("score entry %d: %v", i, err)
		}
	}

	ranked, total, err := engine.Leaderboard("", 2)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(ranked) != 2 {
		t.Errorf("len = %d, want 2", len(ranked))
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(ranked) == 2 && ranked[0].OverallScore < ranked[1].OverallScore {
		t.Error("leaderboard not ordered by overall score descending")
	}
}

func TestHostProjectionDefaults(t *testing.T) {
	engine, st := newTestEngine(t)

	owner := &models.User{
		ID:       uuid.New(),
		Phone:    "+15550000001",
		Name:     "Leila",
		HostType: models.HostTypeService,
		Role:     models.RoleHost,
	}
	if err := st.CreateUser(owner); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	owned := seedEntry(t, st, models.StatusApproved, models.CategoryGeneral, time.Now().UTC())
	owned.UserID = owner.ID
	if err := st.SaveEntry(owned); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}
	seedEntry(t, st, models.StatusApproved, models.CategoryGeneral, time.Now().UTC().Add(time.Minute))

	entries, err := engine.ListApproved("")
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}

	byID := map[uuid.UUID]HostEntry{}
	for _, e := range entries {
		byID[e.ID] = e
	}
	if got := byID[owned.ID]; got.HostName != "Leila" || got.HostType != models.HostTypeService {
		t.Errorf("owned entry host = %q/%q, want Leila/service", got.HostName, got.HostType)
	}
	for id, e := range byID {
		if id == owned.ID {
			continue
		}
		if e.HostName != "Unknown" || e.HostType != models.HostTypeTravel {
			t.Errorf("orphan entry host = %q/%q, want Unknown/travel", e.HostName, e.HostType)
		}
	}
}

func TestStatusChangePreservesScores(t *testing.T) {
	engine, st := newTestEngine(t)
	entry := approvedEntry(t, st)

	if err := engine.RecordJuryScore(entry.ID, uuid.New(), 90, ""); err != nil {
		t.Fatalf("RecordJuryScore: %v", err)
	}
	if _, err := engine.RecordVote(entry.ID, "voter-1"); err != nil {
		t.Fatalf("RecordVote: %v", err)
	}
	before := currentEntry(t, st, entry.ID)

	if _, err := engine.SetStatus(entry.ID, models.StatusRejected); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if _, err := engine.SetStatus(entry.ID, models.StatusApproved); err != nil {
		t.Fatalf("reapprove: %v", err)
	}

	after := currentEntry(t, st, entry.ID)
	if after.TotalVotes != before.TotalVotes ||
		after.JuryScore != before.JuryScore ||
		after.OverallScore != before.OverallScore {
		t.Errorf("scores changed across status transitions: before %+v after %+v", before, after)
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	engine, st := newTestEngine(t)
	entry := approvedEntry(t, st)

	if _, err := engine.SetStatus(entry.ID, "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestListAllIncludesEveryStatus(t *testing.T) {
	engine, st := newTestEngine(t)
	base := time.Now().UTC()

	seedEntry(t, st, models.StatusPending, models.CategoryGeneral, base)
	seedEntry(t, st, models.StatusApproved, models.CategoryGeneral, base.Add(time.Minute))
	newest := seedEntry(t, st, models.StatusRejected, models.CategoryGeneral, base.Add(2*time.Minute))

	entries, err := engine.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].ID != newest.ID {
		t.Error("admin list not ordered newest first")
	}
}
