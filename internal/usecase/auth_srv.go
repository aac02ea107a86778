package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-portal/internal/data/entity"
	"shop-portal/internal/data/repository"
	"shop-portal/internal/dto/request"
	"shop-portal/internal/dto/response"
	"shop-portal/internal/policy"
	"shop-portal/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	AboutMe(ctx context.Context) (*response.AboutMeResponse, error)
	GetUsers(ctx context.Context) ([]response.UserResponse, error)
	GetProfile(ctx context.Context, userID int64) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *request.ProfileUpdateRequest) (*response.ProfileResponse, error)
	SetSessionValue(ctx context.Context, req *request.SessionValueRequest) error
	GetSessionValue(ctx context.Context, key string) (*response.SessionValueResponse, error)
}

type authService struct {
	repo   *repository.Repository
	gate   *policy.Gate
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	gate *policy.Gate,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		gate:   gate,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	existingUser, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("username %q: %w", req.Username, ErrConflict)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	user := &entity.User{
		BaseSimple:   entity.BaseSimple{CreatedAt: time.Now()},
		Username:     req.Username,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// A profile row is created together with the account so that profile
	// reads never miss for registered users.
	profile := &entity.Profile{
		BaseSimple:        entity.BaseSimple{CreatedAt: time.Now()},
		UserID:            user.ID,
		Bio:               req.Bio,
		AgreementAccepted: req.AgreementAccepted,
	}
	if err := s.repo.Profile.Create(ctx, profile); err != nil {
		s.log.Warn("Failed to create profile after register",
			zap.Error(err), zap.Int64("user_id", user.ID))
	}

	// Auto login after register
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.Int64("user_id", user.ID))
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user by username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := utils.ParseUUID(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return fmt.Errorf("invalid token format: %w", err)
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) AboutMe(ctx context.Context) (*response.AboutMeResponse, error) {
	id := policy.FromContext(ctx)
	if !id.IsAuthenticated() {
		return nil, ErrForbidden
	}

	user, err := s.repo.User.FindByID(ctx, id.ID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", id.ID))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", id.ID, ErrNotFound)
	}

	resp := &response.AboutMeResponse{UserResponse: response.UserToResponse(user)}

	profile, err := s.repo.Profile.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to load profile", zap.Error(err), zap.Int64("user_id", user.ID))
	}
	if profile != nil {
		p := response.ProfileToResponse(profile)
		resp.Profile = &p
	}

	return resp, nil
}

func (s *authService) GetUsers(ctx context.Context) ([]response.UserResponse, error) {
	id := policy.FromContext(ctx)
	if !id.HasPerm(policy.PermViewProfile) {
		return nil, ErrForbidden
	}

	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get users", zap.Error(err))
		return nil, fmt.Errorf("get users: %w", err)
	}

	responses := make([]response.UserResponse, len(users))
	for i, user := range users {
		responses[i] = response.UserToResponse(user)
	}

	return responses, nil
}

// GetProfile returns the profile for userID, creating an empty one on the
// first read for accounts that predate the profile table.
func (s *authService) GetProfile(ctx context.Context, userID int64) (*response.ProfileResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find profile", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	if profile == nil {
		profile = &entity.Profile{
			BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
			UserID:     userID,
		}
		if err := s.repo.Profile.Create(ctx, profile); err != nil {
			s.log.Error("Failed to create profile lazily", zap.Error(err), zap.Int64("user_id", userID))
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		s.log.Info("Profile created lazily", zap.Int64("user_id", userID))
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID int64, req *request.ProfileUpdateRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Profile update validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find profile", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("profile for user %d: %w", userID, ErrNotFound)
	}

	id := policy.FromContext(ctx)
	if err := s.gate.Authorize(id, policy.ActionUpdate, policy.ResourceProfile, profile); err != nil {
		s.log.Warn("Profile update denied",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, ErrForbidden
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.AgreementAccepted != nil {
		profile.AgreementAccepted = *req.AgreementAccepted
	}
	if req.Avatar != nil {
		profile.Avatar = req.Avatar
	}

	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *authService) SetSessionValue(ctx context.Context, req *request.SessionValueRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return NewValidationError(errs)
	}

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		return ErrForbidden
	}

	if err := s.repo.Session.SetValue(ctx, token, req.Key, req.Value); err != nil {
		s.log.Error("Failed to set session value", zap.Error(err), zap.String("key", req.Key))
		return fmt.Errorf("failed to set session value: %w", err)
	}

	return nil
}

func (s *authService) GetSessionValue(ctx context.Context, key string) (*response.SessionValueResponse, error) {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		return nil, ErrForbidden
	}

	session, err := s.repo.Session.FindValidSession(ctx, token)
	if err != nil {
		s.log.Error("Failed to find session", zap.Error(err))
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	if session == nil {
		return nil, ErrForbidden
	}

	value, ok := session.Data[key]
	if !ok {
		return nil, fmt.Errorf("session key %q: %w", key, ErrNotFound)
	}

	return &response.SessionValueResponse{Key: key, Value: value}, nil
}

func (s *authService) createSession(ctx context.Context, userID int64) (*entity.Session, error) {
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
		UserID:     userID,
		Token:      utils.GenerateSessionToken(),
		ExpiresAt:  time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
