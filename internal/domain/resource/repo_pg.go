package resource

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct{ pool *pgxpool.Pool }

func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const resourceCols = `id, resource_name, total_count, used_count, last_updated`

func scanResource(row pgx.Row) (*Resource, error) {
	var res Resource
	err := row.Scan(&res.ID, &res.ResourceName, &res.TotalCount, &res.UsedCount, &res.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *pgRepo) List(ctx context.Context) ([]*Resource, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+resourceCols+` FROM hospital_resources ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, rows.Err()
}

func (r *pgRepo) GetByID(ctx context.Context, id int) (*Resource, error) {
	return scanResource(r.pool.QueryRow(ctx, `SELECT `+resourceCols+` FROM hospital_resources WHERE id = $1`, id))
}

func (r *pgRepo) GetByName(ctx context.Context, name string) (*Resource, error) {
	return scanResource(r.pool.QueryRow(ctx,
		`SELECT `+resourceCols+` FROM hospital_resources WHERE resource_name = $1 ORDER BY id LIMIT 1`, name))
}

func (r *pgRepo) Create(ctx context.Context, res *Resource) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO hospital_resources (resource_name, total_count, used_count)
		VALUES ($1,$2,$3)
		RETURNING id, last_updated`,
		res.ResourceName, res.TotalCount, res.UsedCount)
	return row.Scan(&res.ID, &res.LastUpdated)
}

func (r *pgRepo) Update(ctx context.Context, id int, patch Patch) (*Resource, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE hospital_resources SET
			resource_name = COALESCE($2, resource_name),
			total_count = COALESCE($3, total_count),
			used_count = COALESCE($4, used_count),
			last_updated = now()
		WHERE id = $1
		RETURNING `+resourceCols,
		id, patch.ResourceName, patch.TotalCount, patch.UsedCount)
	return scanResource(row)
}

func (r *pgRepo) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM hospital_resources WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
