package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"

	"userservice/internal/cache"
	"userservice/internal/config"
	"userservice/internal/db"
	apperrors "userservice/internal/errors"
	"userservice/internal/handler/dto"
	"userservice/internal/logger"
	"userservice/internal/repository"
	"userservice/internal/service"
	"userservice/internal/validation"
)

// defaultUsers is used when no -source is given.
var defaultUsers = []dto.CreateUserRequest{
	newRequest("Ivan Sidorov", "ivan@mail.com", 25),
	newRequest("Maria Petrova", "maria@mail.com", 31),
	newRequest("Alexey Smirnov", "alexey@mail.com", 44),
}

func newRequest(name, email string, age int) dto.CreateUserRequest {
	return dto.CreateUserRequest{Name: &name, Email: &email, Age: &age}
}

func main() {
	source := flag.String("source", "", "JSON array of users: a file path or an http(s) URL; built-in sample when empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	log.Info("starting seed script")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, log)
	if err != nil {
		log.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	users := defaultUsers
	if *source != "" {
		log.Info("loading users", slog.String("source", *source))
		users, err = loadUsers(*source)
		if err != nil {
			log.Error("failed to load users", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	svc, closeCache := newUserService(gormDB, cfg, log)
	defer closeCache()

	res, err := seedUsers(context.Background(), svc, validation.New(), users, log)
	if err != nil {
		log.Error("failed to seed users", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("seed completed",
		slog.Int("created", res.created),
		slog.Int("existing", res.existing),
		slog.Int("invalid", res.invalid),
	)
}

// newUserService wires the same cache as the server, so creating a user evicts
// any entry a running server still holds under an id reused after RESET_DB.
func newUserService(gormDB *gorm.DB, cfg *config.Config, log *slog.Logger) (service.UserService, func()) {
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warn("redis unreachable, cached users may be stale", slog.String("error", err.Error()))
	}
	svc := service.NewUserService(repository.NewUserRepository(gormDB), cacheClient)
	return svc, func() { _ = cacheClient.Close() }
}

type seedResult struct {
	created  int
	existing int
	invalid  int
}

// seedUsers creates each valid user; users whose email is already taken are counted, not failed.
func seedUsers(ctx context.Context, svc service.UserService, v *validation.CustomValidator, users []dto.CreateUserRequest, log *slog.Logger) (seedResult, error) {
	var res seedResult
	for i := range users {
		req := users[i]
		if err := v.Validate(&req); err != nil {
			log.Warn("skipping invalid user", slog.Int("index", i), slog.String("error", err.Error()))
			res.invalid++
			continue
		}

		created, err := svc.CreateUser(ctx, req.Input())
		switch {
		case errors.Is(err, apperrors.ErrEmailConflict):
			res.existing++
		case err != nil:
			return res, fmt.Errorf("create user %s: %w", *req.Email, err)
		default:
			log.Debug("user created", slog.Uint64("id", uint64(created.ID)))
			res.created++
		}
	}
	return res, nil
}

func loadUsers(source string) ([]dto.CreateUserRequest, error) {
	var (
		body []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = fetch(source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var users []dto.CreateUserRequest
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return users, nil
}

func fetch(url string) ([]byte, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
