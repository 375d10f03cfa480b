package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/resource-server/internal/model"
)

var resourceCols = []string{"id", "title", "description", "created_by", "created_at", "updated_at"}

func testResource(owner uuid.UUID, createdAt time.Time) model.Resource {
	return model.Resource{
		ID:          uuid.New(),
		Title:       "Test",
		Description: "D",
		CreatedBy:   owner,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func addResourceRow(rows *pgxmock.Rows, r model.Resource) *pgxmock.Rows {
	return rows.AddRow(r.ID, r.Title, r.Description, r.CreatedBy, r.CreatedAt, r.UpdatedAt)
}

func TestResourceRepository_Create(t *testing.T) {
	res := testResource(uuid.New(), time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	t.Run("success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO resources`).
			WithArgs(res.ID, res.Title, res.Description, res.CreatedBy, res.CreatedAt, res.UpdatedAt).
			WillReturnRows(addResourceRow(pgxmock.NewRows(resourceCols), res))

		got, err := NewResourceRepository(mock).Create(context.Background(), res)
		require.NoError(t, err)
		assert.Equal(t, res, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO resources`).
			WithArgs(res.ID, res.Title, res.Description, res.CreatedBy, res.CreatedAt, res.UpdatedAt).
			WillReturnError(errors.New("disk full"))

		_, err = NewResourceRepository(mock).Create(context.Background(), res)
		require.EqualError(t, err, "failed to create resource: disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResourceRepository_GetByID(t *testing.T) {
	res := testResource(uuid.New(), time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM resources WHERE id =`).
					WithArgs(res.ID).
					WillReturnRows(addResourceRow(pgxmock.NewRows(resourceCols), res))
			},
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM resources WHERE id =`).
					WithArgs(res.ID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			got, err := NewResourceRepository(mock).GetByID(context.Background(), res.ID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, res, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResourceRepository_GetByOwnerID(t *testing.T) {
	owner := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	newer := testResource(owner, base.Add(time.Minute))
	older := testResource(owner, base)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		want      []model.Resource
		errMsg    string
	}{
		{
			name: "rows in store order",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(resourceCols)
				addResourceRow(rows, newer)
				addResourceRow(rows, older)
				mock.ExpectQuery(`WHERE created_by = \$1\s+ORDER BY created_at DESC`).
					WithArgs(owner).
					WillReturnRows(rows)
			},
			want: []model.Resource{newer, older},
		},
		{
			name: "no rows gives empty slice",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`ORDER BY created_at DESC`).
					WithArgs(owner).
					WillReturnRows(pgxmock.NewRows(resourceCols))
			},
			want: []model.Resource{},
		},
		{
			name: "query error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`ORDER BY created_at DESC`).
					WithArgs(owner).
					WillReturnError(errors.New("timeout"))
			},
			errMsg: "failed to query resources: timeout",
		},
		{
			name: "iteration error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := addResourceRow(pgxmock.NewRows(resourceCols), newer).
					RowError(0, errors.New("broken row"))
				mock.ExpectQuery(`ORDER BY created_at DESC`).
					WithArgs(owner).
					WillReturnRows(rows)
			},
			errMsg: "broken row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			got, err := NewResourceRepository(mock).GetByOwnerID(context.Background(), owner)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResourceRepository_Update(t *testing.T) {
	id := uuid.New()
	title := "Renamed"
	updatedAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	patch := model.ResourcePatch{Title: &title}

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
		errMsg    string
	}{
		{
			name: "updated",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE resources`).
					WithArgs(id, patch.Title, patch.Description, updatedAt).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "missing row",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE resources`).
					WithArgs(id, patch.Title, patch.Description, updatedAt).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE resources`).
					WithArgs(id, patch.Title, patch.Description, updatedAt).
					WillReturnError(errors.New("deadlock"))
			},
			errMsg: "failed to update resource: deadlock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			err = NewResourceRepository(mock).Update(context.Background(), id, patch, updatedAt)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.EqualError(t, err, tt.errMsg)
			default:
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResourceRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "deleted",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM resources WHERE id =`).
					WithArgs(id).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "missing row",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM resources WHERE id =`).
					WithArgs(id).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			err = NewResourceRepository(mock).Delete(context.Background(), id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
