package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository хранит пользователей в Postgres. Каждая операция —
// один запрос, то есть одна неявная транзакция.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, user_type, username, organization_name, full_name, phone, last_access, comments`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.UserType,
		&u.Username,
		&u.OrganizationName,
		&u.FullName,
		&u.Phone,
		&u.LastAccess,
		&u.Comments,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, in CreateInput) (*User, error) {
	query := `
		INSERT INTO users (user_type, username, organization_name, full_name, phone, last_access, comments)
		VALUES ($1, $2, $3, $4, $5, now(), $6)
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRow(ctx, query,
		in.UserType,
		in.Username,
		in.OrganizationName,
		in.FullName,
		in.Phone,
		in.Comments,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("repository: failed to insert user: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select user %d: %w", id, err)
	}
	return u, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select user %q: %w", username, err)
	}
	return u, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating users: %w", err)
	}
	return users, nil
}

func (r *PostgresRepository) RefreshAccess(ctx context.Context, id int) (*User, error) {
	query := `UPDATE users SET last_access = now() WHERE id = $1 RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to refresh access for user %d: %w", id, err)
	}
	return u, nil
}
