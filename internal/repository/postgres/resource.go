package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/resource-server/internal/model"
)

var _ model.ResourceStore = (*ResourceRepository)(nil)

const resourceColumns = `id, title, description, created_by, created_at, updated_at`

type ResourceRepository struct {
	db Querier
}

func NewResourceRepository(db Querier) *ResourceRepository {
	return &ResourceRepository{
		db: db,
	}
}

func (r *ResourceRepository) Create(ctx context.Context, resource model.Resource) (model.Resource, error) {
	query := `INSERT INTO resources (` + resourceColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + resourceColumns

	saved, err := scanResource(r.db.QueryRow(ctx, query,
		resource.ID, resource.Title, resource.Description, resource.CreatedBy,
		resource.CreatedAt, resource.UpdatedAt,
	))
	if err != nil {
		return model.Resource{}, fmt.Errorf("failed to create resource: %w", err)
	}

	return saved, nil
}

func (r *ResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`

	resource, err := scanResource(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Resource{}, model.ErrNotFound
		}
		return model.Resource{}, fmt.Errorf("failed to get resource by id: %w", err)
	}

	return resource, nil
}

// GetByOwnerID returns the owner's resources, newest first.
func (r *ResourceRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources
			  WHERE created_by = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	resources := make([]model.Resource, 0)
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, resource)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resources: %w", err)
	}

	return resources, nil
}

// Update writes the non-nil patch fields and the new updated_at.
func (r *ResourceRepository) Update(ctx context.Context, id uuid.UUID, patch model.ResourcePatch, updatedAt time.Time) error {
	query := `UPDATE resources
			  SET title = COALESCE($2, title),
			      description = COALESCE($3, description),
			      updated_at = $4
			  WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, patch.Title, patch.Description, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanResource(row pgx.Row) (model.Resource, error) {
	var resource model.Resource
	err := row.Scan(
		&resource.ID, &resource.Title, &resource.Description, &resource.CreatedBy,
		&resource.CreatedAt, &resource.UpdatedAt,
	)
	return resource, err
}
