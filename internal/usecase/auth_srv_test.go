package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shop-portal/internal/data/entity"
	"shop-portal/internal/data/repository"
	"shop-portal/internal/dto/request"
	"shop-portal/internal/policy"
	"shop-portal/pkg/utils"

	"go.uber.org/zap"
)

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	nextID   int64
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*entity.Session{}}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.nextID++
	session.ID = f.nextID
	if session.Data == nil {
		session.Data = map[string]string{}
	}
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	if session, ok := f.sessions[token]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) SetValue(_ context.Context, token, key, value string) error {
	if session, ok := f.sessions[token]; ok {
		session.Data[key] = value
	}
	return nil
}

var _ repository.SessionRepository = (*fakeSessionRepo)(nil)

type fakeProfileRepo struct {
	profiles map[int64]*entity.Profile
	nextID   int64
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[int64]*entity.Profile{}}
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *entity.Profile) error {
	f.nextID++
	profile.ID = f.nextID
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) FindByUserID(_ context.Context, userID int64) (*entity.Profile, error) {
	return f.profiles[userID], nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *entity.Profile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

var _ repository.ProfileRepository = (*fakeProfileRepo)(nil)

func newAuthFixture() (AuthService, *fakeUserRepo, *fakeSessionRepo, *fakeProfileRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	profiles := newFakeProfileRepo()
	repo := &repository.Repository{User: users, Session: sessions, Profile: profiles}
	svc := NewAuthService(repo, policy.NewDefaultGate(), testConfig(), zap.NewNop())
	return svc, users, sessions, profiles
}

// TestRegisterCreatesProfileAndSession signs the new account in right away
// and seeds its profile row.
func TestRegisterCreatesProfileAndSession(t *testing.T) {
	svc, users, sessions, profiles := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &request.RegisterRequest{
		Username:          "alice",
		Password:          "sw0rdfish",
		Bio:               "gardener",
		AgreementAccepted: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, resp.Token)

	user, err := users.FindByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.NotEqual(t, "sw0rdfish", user.PasswordHash)

	profile := profiles.profiles[user.ID]
	assert.NotNil(t, profile)
	assert.Equal(t, "gardener", profile.Bio)
	assert.True(t, profile.AgreementAccepted)

	assert.Len(t, sessions.sessions, 1)
}

// TestRegisterRejectsTakenUsername refuses a duplicate account name.
func TestRegisterRejectsTakenUsername(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{Username: "alice", Password: "sw0rdfish"})
	assert.NoError(t, err)

	_, err = svc.Register(ctx, &request.RegisterRequest{Username: "alice", Password: "different1"})
	assert.ErrorIs(t, err, ErrConflict)
}

// TestLogin covers both failure modes with the same opaque error, so a
// caller cannot probe for existing usernames.
func TestLogin(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{Username: "alice", Password: "sw0rdfish"})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, &request.LoginRequest{Username: "nobody", Password: "sw0rdfish"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := svc.Login(ctx, &request.LoginRequest{Username: "alice", Password: "sw0rdfish"})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

// TestLogoutRevokesSession makes the token unusable afterwards.
func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &request.RegisterRequest{Username: "alice", Password: "sw0rdfish"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(ctx, resp.Token))

	found, err := sessions.FindValidSession(ctx, resp.Token)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

// TestGetProfileLazyCreate returns an empty profile on the first read for a
// user that has none yet.
func TestGetProfileLazyCreate(t *testing.T) {
	svc, users, _, profiles := newAuthFixture()
	users.addUser(7, "bob", false, false)

	resp, err := svc.GetProfile(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.UserID)
	assert.NotNil(t, profiles.profiles[7])

	_, err = svc.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestUpdateProfileOwnerOnly lets only the owning user change the profile.
func TestUpdateProfileOwnerOnly(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	users.addUser(7, "bob", false, false)

	_, err := svc.GetProfile(context.Background(), 7)
	assert.NoError(t, err)

	bio := "beekeeper"
	_, err = svc.UpdateProfile(ctxWithPerms(8), 7, &request.ProfileUpdateRequest{Bio: &bio})
	assert.ErrorIs(t, err, ErrForbidden)

	resp, err := svc.UpdateProfile(ctxWithPerms(7), 7, &request.ProfileUpdateRequest{Bio: &bio})
	assert.NoError(t, err)
	assert.Equal(t, "beekeeper", resp.Bio)
}

// TestGetUsersNeedsViewProfileGrant keeps the account listing behind the
// view_profile permission.
func TestGetUsersNeedsViewProfileGrant(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	users.addUser(7, "bob", false, false)

	_, err := svc.GetUsers(ctxWithPerms(7))
	assert.ErrorIs(t, err, ErrForbidden)

	list, err := svc.GetUsers(ctxWithPerms(7, policy.PermViewProfile))
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

// TestSessionValueRoundTrip stores a key on the session and reads it back;
// a missing key is a not-found, not an empty value.
func TestSessionValueRoundTrip(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{Username: "alice", Password: "sw0rdfish"})
	assert.NoError(t, err)

	ctx := utils.SetTokenContext(context.Background(), resp.Token)

	err = svc.SetSessionValue(ctx, &request.SessionValueRequest{Key: "theme", Value: "dark"})
	assert.NoError(t, err)

	value, err := svc.GetSessionValue(ctx, "theme")
	assert.NoError(t, err)
	assert.Equal(t, "dark", value.Value)

	_, err = svc.GetSessionValue(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.SetSessionValue(context.Background(), &request.SessionValueRequest{Key: "theme", Value: "light"})
	assert.ErrorIs(t, err, ErrForbidden)
}
