package dto

import (
	"time"

	"github.com/gab-ehcoud/hostStar/internal/models"
	"github.com/google/uuid"
)

type SignupRequest struct {
	Phone    string          `json:"phone"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	HostType models.HostType `json:"host_type"`
}

type RequestOTPRequest struct {
	Phone string `json:"phone"`
}

type RequestOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Code is only populated in dev mode, where no SMS gateway is wired.
	Code string `json:"code,omitempty"`
}

type LoginRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID              uuid.UUID       `json:"id"`
	Phone           string          `json:"phone"`
	Name            string          `json:"name"`
	Email           string          `json:"email,omitempty"`
	HostType        models.HostType `json:"host_type"`
	Role            models.Role     `json:"role"`
	KYCVerified     bool            `json:"kyc_verified"`
	ProfileComplete bool            `json:"profile_complete"`
	CreatedAt       time.Time       `json:"created_at"`
}
