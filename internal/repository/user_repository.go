package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	apperrors "userservice/internal/errors"
	"userservice/internal/model"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// UserRepository defines persistence operations.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id uint, user *model.User) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return NewUserRepositoryWithClock(db, time.Now)
}

// NewUserRepositoryWithClock builds a repository that stamps CreatedAt from now.
func NewUserRepositoryWithClock(db *gorm.DB, now func() time.Time) UserRepository {
	return &userRepository{db: db, now: now}
}

// List returns all users in insertion order.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateError(err, "find user")
	}
	return &user, nil
}

// Create inserts a new user. The database assigns ID; CreatedAt is stamped here.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	user.ID = 0
	// DATETIME(3) keeps milliseconds, so the returned record matches a later read.
	user.CreatedAt = r.now().Truncate(time.Millisecond)
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateError(err, "create user")
	}
	return nil
}

// Update overwrites the mutable fields of an existing user.
func (r *userRepository) Update(ctx context.Context, id uint, user *model.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.User
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			return err
		}
		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"name":  user.Name,
			"email": user.Email,
			"age":   user.Age,
		}).Error; err != nil {
			return err
		}
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
		return nil
	})
	if err != nil {
		return translateError(err, "update user")
	}
	return nil
}

// Delete permanently removes a user.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return translateError(res.Error, "delete user")
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// translateError maps storage failures onto the domain error kinds.
func translateError(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrUserNotFound
	case isDuplicateKey(err):
		return apperrors.ErrEmailConflict
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}
