package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"userservice/internal/config"
	"userservice/internal/db"
	apperrors "userservice/internal/errors"
	"userservice/internal/handler/dto"
	"userservice/internal/validation"
)

type stubService struct {
	taken   map[string]bool
	failOn  string
	created []dto.UserInput
}

func (s *stubService) ListUsers(context.Context) ([]dto.User, error) { return nil, nil }
func (s *stubService) GetUser(context.Context, uint) (*dto.User, error) {
	return nil, apperrors.ErrUserNotFound
}
func (s *stubService) DeleteUser(context.Context, uint) error { return nil }
func (s *stubService) UpdateUser(context.Context, uint, dto.UserInput) (*dto.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (s *stubService) CreateUser(_ context.Context, in dto.UserInput) (*dto.User, error) {
	if *in.Email == s.failOn {
		return nil, errors.New("create user: connection lost")
	}
	if s.taken[*in.Email] {
		return nil, apperrors.ErrEmailConflict
	}
	s.created = append(s.created, in)
	return &dto.User{ID: uint(len(s.created)), Name: *in.Name, Email: *in.Email, Age: *in.Age}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeedUsers(t *testing.T) {
	svc := &stubService{taken: map[string]bool{"maria@mail.com": true}}
	users := append([]dto.CreateUserRequest{newRequest("X", "bad", 0)}, defaultUsers...)

	res, err := seedUsers(context.Background(), svc, validation.New(), users, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, seedResult{created: 2, existing: 1, invalid: 1}, res)
	assert.Len(t, svc.created, 2)
}

func TestSeedUsers_StopsOnStoreFailure(t *testing.T) {
	svc := &stubService{failOn: "maria@mail.com"}

	res, err := seedUsers(context.Background(), svc, validation.New(), defaultUsers, quietLogger())
	assert.Error(t, err)
	assert.Equal(t, 1, res.created)
}

func TestLoadUsers_FromFileAndURL(t *testing.T) {
	payload := `[{"name":"Ivan Sidorov","email":"ivan@mail.com","age":25}]`

	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
	users, err := loadUsers(path)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ivan@mail.com", *users[0].Email)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()
	users, err = loadUsers(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 25, *users[0].Age)
}

func TestLoadUsers_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"}`), 0o600))

	_, err := loadUsers(path)
	assert.Error(t, err)
}

func TestSeedUsers_EvictsCachedUserForReusedID(t *testing.T) {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	require.NoError(t, db.Migrate(gormDB))

	mr := miniredis.RunT(t)
	// left behind by a server that served user 1 before the tables were reset
	require.NoError(t, mr.Set("user:1", `{"id":1,"name":"Dropped User","email":"old@mail.com","age":60}`))

	svc, closeCache := newUserService(gormDB, &config.Config{RedisAddr: mr.Addr()}, quietLogger())
	defer closeCache()

	res, err := seedUsers(context.Background(), svc, validation.New(), defaultUsers, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, res.created)
	assert.False(t, mr.Exists("user:1"))

	user, err := svc.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ivan@mail.com", user.Email)
}

func TestNewUserService_WithoutRedis(t *testing.T) {
	svc, closeCache := newUserService(nil, &config.Config{}, quietLogger())
	defer closeCache()
	assert.NotNil(t, svc)
}
