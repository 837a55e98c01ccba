package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/gab-ehcoud/hostStar/internal/config"
	"github.com/gab-ehcoud/hostStar/internal/dto"
	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/gab-ehcoud/hostStar/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPhoneTaken   = errors.New("phone number already registered")
	ErrInvalidOTP   = errors.New("invalid or expired code")
	ErrInvalidToken = errors.New("invalid or expired refresh token")
	ErrUserNotFound = errors.New("user not found")
)

type AuthService struct {
	store store.Store
	cfg   *config.Config
}

func NewAuthService(st store.Store, cfg *config.Config) *AuthService {
	return &AuthService{store: st, cfg: cfg}
}

func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if req.Phone == "" || req.Name == "" || req.HostType == "" {
		return nil, errors.New("phone, name and host type are required")
	}
	if !req.HostType.Valid() {
		return nil, fmt.Errorf("invalid host type %q", req.HostType)
	}

	user := models.User{
		ID:       uuid.New(),
		Phone:    req.Phone,
		Name:     req.Name,
		Email:    req.Email,
		HostType: req.HostType,
		Role:     models.RoleHost,
	}

	if err := s.store.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrPhoneTaken) {
			return nil, ErrPhoneTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user signed up", "user_id", user.ID, "host_type", user.HostType)
	return s.generateTokenPair(&user)
}

// RequestOTP issues a fresh 4-digit login code for a registered phone and
// returns it. Delivery over SMS/WhatsApp is out of scope; the handler echoes
// the code only in dev mode.
func (s *AuthService) RequestOTP(phone string) (string, error) {
	user, err := s.store.UserByPhone(phone)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	code, err := generateOTP()
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}

	record := models.OTPCode{
		ID:        uuid.New(),
		Phone:     phone,
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(s.cfg.OTPExpiry),
	}
	if err := s.store.SaveOTPCode(&record); err != nil {
		return "", fmt.Errorf("failed to store code: %w", err)
	}

	slog.Info("otp issued", "user_id", user.ID)
	return code, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Phone == "" {
		return nil, errors.New("phone number required")
	}

	user, err := s.store.UserByPhone(req.Phone)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	code, err := s.store.OTPCodeByPhone(req.Phone)
	if err != nil {
		return nil, ErrInvalidOTP
	}
	if time.Now().After(code.ExpiresAt) {
		_ = s.store.DeleteOTPCode(req.Phone)
		return nil, ErrInvalidOTP
	}
	if err := bcrypt.CompareHashAndPassword([]byte(code.CodeHash), []byte(req.OTP)); err != nil {
		return nil, ErrInvalidOTP
	}

	// Single use: a verified code cannot be replayed.
	if err := s.store.DeleteOTPCode(req.Phone); err != nil {
		return nil, fmt.Errorf("failed to consume code: %w", err)
	}

	return s.generateTokenPair(user)
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	stored, err := s.store.RefreshTokenByHash(tokenHash)
	if err != nil || stored.Revoked {
		return nil, ErrInvalidToken
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.store.RevokeRefreshToken(tokenHash)
		return nil, ErrInvalidToken
	}

	if err := s.store.RevokeRefreshToken(tokenHash); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	user, err := s.store.UserByID(stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return s.generateTokenPair(user)
}

// Logout is idempotent: revoking an unknown token is not an error.
func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	err := s.store.RevokeRefreshToken(hashToken(req.RefreshToken))
	if errors.Is(err, store.ErrTokenNotFound) {
		return nil
	}
	return err
}

func (s *AuthService) generateTokenPair(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:              user.ID,
			Phone:           user.Phone,
			Name:            user.Name,
			Email:           user.Email,
			HostType:        user.HostType,
			Role:            user.Role,
			KYCVerified:     user.KYCVerified,
			ProfileComplete: user.ProfileComplete,
			CreatedAt:       user.CreatedAt,
		},
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"phone": user.Phone,
		"name":  user.Name,
		"role":  string(user.Role),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.store.SaveRefreshToken(&record); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
