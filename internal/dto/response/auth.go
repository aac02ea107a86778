package response

import (
	"time"

	"shop-portal/internal/data/entity"
)

type AuthResponse struct {
	UserID    int64     `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Staff     bool      `json:"is_staff"`
	Superuser bool      `json:"is_superuser"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Staff     bool      `json:"is_staff"`
	Superuser bool      `json:"is_superuser"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileResponse struct {
	ID                int64   `json:"id"`
	UserID            int64   `json:"user"`
	Bio               string  `json:"bio"`
	AgreementAccepted bool    `json:"agreement_accepted"`
	Avatar            *string `json:"avatar,omitempty"`
}

type AboutMeResponse struct {
	UserResponse
	Profile *ProfileResponse `json:"profile,omitempty"`
}

type SessionValueResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Staff:     user.Staff,
		Superuser: user.Superuser,
		CreatedAt: user.CreatedAt,
	}
}

func ProfileToResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                profile.ID,
		UserID:            profile.UserID,
		Bio:               profile.Bio,
		AgreementAccepted: profile.AgreementAccepted,
		Avatar:            profile.Avatar,
	}
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Staff:     user.Staff,
		Superuser: user.Superuser,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
