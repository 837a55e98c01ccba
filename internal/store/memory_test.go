package store

import (
	"errors"
	"testing"
	"time"

	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/google/uuid"
)

func TestCreateUserEnforcesUniquePhone(t *testing.T) {
	m := NewMemory()

	first := &models.User{ID: uuid.New(), Phone: "+15550000001", Name: "A", HostType: models.HostTypeTravel}
	if err := m.CreateUser(first); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	dup := &models.User{ID: uuid.New(), Phone: "+15550000001", Name: "B", HostType: models.HostTypeService}
	if err := m.CreateUser(dup); !errors.Is(err, ErrPhoneTaken) {
		t.Fatalf("err = %v, want ErrPhoneTaken", err)
	}
}

func TestCreateVoteEnforcesOnePerVoter(t *testing.T) {
	m := NewMemory()
	entryID := uuid.New()

	if err := m.CreateVote(&models.Vote{ID: uuid.New(), EntryID: entryID, VoterID: "v1"}); err != nil {
		t.Fatalf("CreateVote: %v", err)
	}
	err := m.CreateVote(&models.Vote{ID: uuid.New(), EntryID: entryID, VoterID: "v1"})
	if !errors.Is(err, ErrDuplicateVote) {
		t.Fatalf("err = %v, want ErrDuplicateVote", err)
	}

	// The same voter may still vote for a different entry.
	if err := m.CreateVote(&models.Vote{ID: uuid.New(), EntryID: uuid.New(), VoterID: "v1"}); err != nil {
		t.Fatalf("vote on second entry: %v", err)
	}

	if n, _ := m.CountVotes(entryID); n != 1 {
		t.Errorf("CountVotes = %d, want 1", n)
	}
}

func TestUpsertJuryScoreReplacesPerJuror(t *testing.T) {
	m := NewMemory()
	entryID := uuid.New()
	juror := uuid.New()

	base := time.Now().UTC()
	if err := m.UpsertJuryScore(&models.JuryScore{ID: uuid.New(), EntryID: entryID, JuryID: juror, Score: 80, ScoredAt: base}); err != nil {
		t.Fatalf("UpsertJuryScore: %v", err)
	}
	if err := m.UpsertJuryScore(&models.JuryScore{ID: uuid.New(), EntryID: entryID, JuryID: juror, Score: 40, ScoredAt: base.Add(time.Second)}); err != nil {
		t.Fatalf("resubmit: %v", err)
	}

	scores, err := m.JuryScoresByEntry(entryID)
	if err != nil {
		t.Fatalf("JuryScoresByEntry: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 40 {
		t.Fatalf("scores = %+v, want single replaced score of 40", scores)
	}
}

func TestRevokeRefreshToken(t *testing.T) {
	m := NewMemory()

	if err := m.RevokeRefreshToken("unknown-hash"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("err = %v, want ErrTokenNotFound", err)
	}

	token := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: "abc123",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := m.SaveRefreshToken(token); err != nil {
		t.Fatalf("SaveRefreshToken: %v", err)
	}
	if err := m.RevokeRefreshToken("abc123"); err != nil {
		t.Fatalf("RevokeRefreshToken: %v", err)
	}

	stored, err := m.RefreshTokenByHash("abc123")
	if err != nil {
		t.Fatalf("RefreshTokenByHash: %v", err)
	}
	if !stored.Revoked {
		t.Error("token not marked revoked")
	}
}

func TestSaveEntryRequiresExisting(t *testing.T) {
	m := NewMemory()

	phantom := &models.Entry{ID: uuid.New(), UserID: uuid.New(), Title: "x"}
	if err := m.SaveEntry(phantom); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("err = %v, want ErrEntryNotFound", err)
	}
}

func TestSaveOTPCodeReplacesPending(t *testing.T) {
	m := NewMemory()
	phone := "+15550000001"

	if err := m.SaveOTPCode(&models.OTPCode{ID: uuid.New(), Phone: phone, CodeHash: "old"}); err != nil {
		t.Fatalf("SaveOTPCode: %v", err)
	}
	if err := m.SaveOTPCode(&models.OTPCode{ID: uuid.New(), Phone: phone, CodeHash: "new"}); err != nil {
		t.Fatalf("reissue: %v", err)
	}

	code, err := m.OTPCodeByPhone(phone)
	if err != nil {
		t.Fatalf("OTPCodeByPhone: %v", err)
	}
	if code.CodeHash != "new" {
		t.Errorf("code hash = %q, want the reissued code", code.CodeHash)
	}

	if err := m.DeleteOTPCode(phone); err != nil {
		t.Fatalf("DeleteOTPCode: %v", err)
	}
	if _, err := m.OTPCodeByPhone(phone); !errors.Is(err, ErrOTPNotFound) {
		t.Fatalf("err = %v, want ErrOTPNotFound after delete", err)
	}
}
