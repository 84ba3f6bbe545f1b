package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/martijn/userhub/internal/core/domain"
	"github.com/martijn/userhub/internal/core/repository"
	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{db: db}
}

// isUniqueViolation reports whether err is the backend's unique-constraint
// error. The UNIQUE index on user.email is the authoritative guard against
// concurrent creates with the same address, so the violation is detected
// here rather than with a check-then-insert.
func isUniqueViolation(err error) bool {
	var serr *sqlitedriver.Error
	return errors.As(err, &serr) && serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO user (name, email, password_digest, phone, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		user.Name,
		user.Email,
		user.PasswordDigest,
		NullString(user.Phone),
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	user.ID = id

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_digest, phone, created_at
		FROM user
		WHERE id = ?
	`
	var user domain.User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_digest, phone, created_at
		FROM user
		WHERE email = ?
	`
	var user domain.User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*domain.User, error) {
	query := `
		SELECT id, name, email, password_digest, phone, created_at
		FROM user
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.Search != "" {
		query += " AND (name LIKE ? OR email LIKE ?)"
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}

	query += " ORDER BY created_at DESC, id DESC"

	if filter.PerPage > 0 {
		query += " LIMIT ?"
		args = append(args, filter.PerPage)

		if filter.Page > 1 {
			query += " OFFSET ?"
			args = append(args, (filter.Page-1)*filter.PerPage)
		}
	}

	var users []*domain.User
	err := r.db.SelectContext(ctx, &users, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context, filter repository.UserFilter) (int, error) {
	query := `SELECT COUNT(*) FROM user WHERE 1=1`
	args := []interface{}{}

	if filter.Search != "" {
		query += " AND (name LIKE ? OR email LIKE ?)"
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}

	var count int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var user domain.User
	err = tx.GetContext(ctx, &user, `
		SELECT id, name, email, password_digest, phone, created_at
		FROM user
		WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.PasswordDigest != nil {
		user.PasswordDigest = *update.PasswordDigest
	}
	if update.Phone != nil {
		user.Phone = update.Phone
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE user
		SET name = ?, email = ?, password_digest = ?, phone = ?
		WHERE id = ?
	`,
		user.Name,
		user.Email,
		user.PasswordDigest,
		NullString(user.Phone),
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM user WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
