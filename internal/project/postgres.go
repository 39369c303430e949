package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository хранит проекты в Postgres.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const projectColumns = `id, name, deal_type, industry, created_at, is_visible, is_completed,
	contact_name_1, contact_phone_1, contact_position_1, contact_phone_2,
	inn, location, revenue, ebitda, price, sale_percent, website, hide_until_nda, comments`

func scanProject(row pgx.Row) (*Project, error) {
	var p Project
	err := row.Scan(
		&p.ID, &p.Name, &p.DealType, &p.Industry, &p.CreatedAt, &p.IsVisible, &p.IsCompleted,
		&p.ContactName1, &p.ContactPhone1, &p.ContactPosition1, &p.ContactPhone2,
		&p.INN, &p.Location, &p.Revenue, &p.EBITDA, &p.Price, &p.SalePercent,
		&p.Website, &p.HideUntilNDA, &p.Comments,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, in CreateInput) (*Project, error) {
	query := `
		INSERT INTO projects (name, deal_type, industry, created_at, is_visible, is_completed,
			contact_name_1, contact_phone_1, contact_position_1, contact_phone_2,
			inn, location, revenue, ebitda, price, sale_percent, website, hide_until_nda, comments)
		VALUES ($1, $2, $3, now(), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + projectColumns

	p, err := scanProject(r.db.QueryRow(ctx, query,
		in.Name,
		in.DealType,
		in.Industry,
		boolOrDefault(in.IsVisible, true),
		boolOrDefault(in.IsCompleted, false),
		in.ContactName1,
		in.ContactPhone1,
		in.ContactPosition1,
		in.ContactPhone2,
		in.INN,
		in.Location,
		in.Revenue,
		in.EBITDA,
		in.Price,
		in.SalePercent,
		in.Website,
		boolOrDefault(in.HideUntilNDA, false),
		in.Comments,
	))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert project: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select project %d: %w", id, err)
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := make([]Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating projects: %w", err)
	}
	return projects, nil
}

// Update обновляет только заполненные поля патча одним UPDATE.
func (r *PostgresRepository) Update(ctx context.Context, id int, patch Patch) (*Project, error) {
	set := make([]string, 0, 8)
	args := make([]interface{}, 0, 8)

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.DealType != nil {
		add("deal_type", *patch.DealType)
	}
	if patch.Industry != nil {
		add("industry", *patch.Industry)
	}
	if patch.IsVisible != nil {
		add("is_visible", *patch.IsVisible)
	}
	if patch.IsCompleted != nil {
		add("is_completed", *patch.IsCompleted)
	}
	if patch.ContactName1 != nil {
		add("contact_name_1", *patch.ContactName1)
	}
	if patch.ContactPhone1 != nil {
		add("contact_phone_1", *patch.ContactPhone1)
	}
	if patch.ContactPosition1 != nil {
		add("contact_position_1", *patch.ContactPosition1)
	}
	if patch.ContactPhone2 != nil {
		add("contact_phone_2", *patch.ContactPhone2)
	}
	if patch.INN != nil {
		add("inn", *patch.INN)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Revenue != nil {
		add("revenue", *patch.Revenue)
	}
	if patch.EBITDA != nil {
		add("ebitda", *patch.EBITDA)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.SalePercent != nil {
		add("sale_percent", *patch.SalePercent)
	}
	if patch.Website != nil {
		add("website", *patch.Website)
	}
	if patch.HideUntilNDA != nil {
		add("hide_until_nda", *patch.HideUntilNDA)
	}
	if patch.Comments != nil {
		add("comments", *patch.Comments)
	}

	if len(set) == 0 {
		// Пустой патч — вернуть запись без изменений.
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), projectColumns)

	p, err := scanProject(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to update project %d: %w", id, err)
	}
	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete project %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
