package request

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dealflow-platform/admin-api/internal/types"
)

// PostgresRepository хранит обращения в Postgres.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const requestColumns = `id, user_type, topic, created_at, status, full_name, organization_name, cnum, login, phone, comments`

func scanRequest(row pgx.Row) (*Request, error) {
	var req Request
	err := row.Scan(
		&req.ID,
		&req.UserType,
		&req.Topic,
		&req.CreatedAt,
		&req.Status,
		&req.FullName,
		&req.OrganizationName,
		&req.CNum,
		&req.Login,
		&req.Phone,
		&req.Comments,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *PostgresRepository) Create(ctx context.Context, in CreateInput) (*Request, error) {
	query := `
		INSERT INTO requests (user_type, topic, created_at, status, full_name, organization_name, cnum, login, phone, comments)
		VALUES ($1, $2, now(), $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + requestColumns

	req, err := scanRequest(r.db.QueryRow(ctx, query,
		in.UserType,
		in.Topic,
		types.RequestStatusNew,
		in.FullName,
		in.OrganizationName,
		in.CNum,
		in.Login,
		in.Phone,
		in.Comments,
	))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert request: %w", err)
	}
	return req, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select request %d: %w", id, err)
	}
	return req, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query requests: %w", err)
	}
	defer rows.Close()

	requests := make([]Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan request: %w", err)
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating requests: %w", err)
	}
	return requests, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, patch Patch) (*Request, error) {
	set := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Topic != nil {
		add("topic", *patch.Topic)
	}
	if patch.FullName != nil {
		add("full_name", *patch.FullName)
	}
	if patch.OrganizationName != nil {
		add("organization_name", *patch.OrganizationName)
	}
	if patch.CNum != nil {
		add("cnum", *patch.CNum)
	}
	if patch.Login != nil {
		add("login", *patch.Login)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Comments != nil {
		add("comments", *patch.Comments)
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE requests SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), requestColumns)

	req, err := scanRequest(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to update request %d: %w", id, err)
	}
	return req, nil
}
