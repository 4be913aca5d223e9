package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/items_api/internal/config"
	"github.com/Skotchmaster/items_api/internal/db"
	"github.com/Skotchmaster/items_api/internal/events"
	"github.com/Skotchmaster/items_api/internal/repo"
	"github.com/Skotchmaster/items_api/internal/tokens"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	gdb, err := db.Open(context.Background(), config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })
	return repo.New(gdb)
}

func newTestAuthService(t *testing.T) (*AuthService, *recorder) {
	t.Helper()
	rec := &recorder{}
	return &AuthService{
		Users:  newTestRepo(t),
		Tokens: tokens.NewManager([]byte("test-jwt-secret"), time.Hour),
		Events: rec,
	}, rec
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, rec := newTestAuthService(t)
	ctx := context.Background()

	id, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.NotZero(t, id)

	res, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, id, res.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, 5*time.Second)

	claims, err := svc.Tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	assert.Equal(t, []string{events.UserRegistered, events.UserLoggedIn}, rec.types())
	assert.Equal(t, events.TopicUser, rec.events[0].Topic)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, rec := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "another1")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.Len(t, rec.types(), 1)

	_, err = svc.Login(ctx, "alice", "secret1")
	assert.NoError(t, err)
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), "al", "secret1")
	assert.ErrorIs(t, err, ErrInvalidRegisterName)

	_, err = svc.Register(context.Background(), "alice", "12345")
	assert.ErrorIs(t, err, ErrInvalidRegisterPass)

	_, err = svc.Register(context.Background(), "alice", strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.NotErrorIs(t, err, ErrStorage)
}

func TestAuthService_Login_Failures(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ALICE", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "alice", nil)
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestAuthService_StorageErrors(t *testing.T) {
	svc := &AuthService{
		Users:  brokenUsers{createErr: errBoom, findErr: errBoom},
		Tokens: tokens.NewManager([]byte("k"), time.Hour),
	}

	_, err := svc.Register(context.Background(), "alice", "secret1")
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, errBoom)

	_, err = svc.Login(context.Background(), "alice", "secret1")
	assert.ErrorIs(t, err, ErrStorage)
}

func TestAuthService_PublishFailureDoesNotFailRequest(t *testing.T) {
	svc, rec := newTestAuthService(t)
	rec.err = errBoom

	_, err := svc.Register(context.Background(), "alice", "secret1")
	assert.NoError(t, err)
}
