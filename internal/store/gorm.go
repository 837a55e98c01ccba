package store

import (
	"errors"

	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the PostgreSQL-backed record store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrPhoneTaken
		}
		return err
	}
	return nil
}

func (s *GormStore) UserByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) SaveRefreshToken(token *models.RefreshToken) error {
	return s.db.Save(token).Error
}

func (s *GormStore) RefreshTokenByHash(hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := s.db.Where("token_hash = ?", hash).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (s *GormStore) RevokeRefreshToken(hash string) error {
	result := s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", hash).
		Update("revoked", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}
	return nil
}

func (s *GormStore) SaveOTPCode(code *models.OTPCode) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "phone"}},
		DoUpdates: clause.Assignments(map[string]any{
			"code_hash":  code.CodeHash,
			"expires_at": code.ExpiresAt,
		}),
	}).Create(code).Error
}

func (s *GormStore) OTPCodeByPhone(phone string) (*models.OTPCode, error) {
	var code models.OTPCode
	if err := s.db.Where("phone = ?", phone).First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOTPNotFound
		}
		return nil, err
	}
	return &code, nil
}

func (s *GormStore) DeleteOTPCode(phone string) error {
	return s.db.Where("phone = ?", phone).Delete(&models.OTPCode{}).Error
}

func (s *GormStore) CreateEntry(entry *models.Entry) error {
	return s.db.Create(entry).Error
}

func (s *GormStore) EntryByID(id uuid.UUID) (*models.Entry, error) {
	var entry models.Entry
	if err := s.db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *GormStore) SaveEntry(entry *models.Entry) error {
	return s.db.Save(entry).Error
}

func (s *GormStore) EntriesByUser(userID uuid.UUID) ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *GormStore) ApprovedEntries(category models.Category) ([]models.Entry, error) {
	query := s.db.Where("status = ?", models.StatusApproved)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var entries []models.Entry
	err := query.Order("overall_score DESC, uploaded_at ASC").Find(&entries).Error
	return entries, err
}

func (s *GormStore) AllEntries() ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.Order("uploaded_at DESC").Find(&entries).Error
	return entries, err
}

func (s *GormStore) CreateVote(vote *models.Vote) error {
	if err := s.db.Create(vote).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateVote
		}
		return err
	}
	return nil
}

func (s *GormStore) HasVoted(entryID uuid.UUID, voterID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Vote{}).
		Where("entry_id = ? AND voter_id = ?", entryID, voterID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CountVotes(entryID uuid.UUID) (int, error) {
	var count int64
	err := s.db.Model(&models.Vote{}).
		Where("entry_id = ?", entryID).
		Count(&count).Error
	return int(count), err
}

func (s *GormStore) UpsertJuryScore(score *models.JuryScore) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "entry_id"}, {Name: "jury_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"score":     score.Score,
			"feedback":  score.Feedback,
			"scored_at": score.ScoredAt,
		}),
	}).Create(score).Error
}

func (s *GormStore) JuryScoresByEntry(entryID uuid.UUID) ([]models.JuryScore, error) {
	var scores []models.JuryScore
	err := s.db.Where("entry_id = ?", entryID).
		Order("scored_at ASC").
		Find(&scores).Error
	return scores, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
