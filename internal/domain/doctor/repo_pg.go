package doctor

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medicore/hms/internal/platform/ident"
)

type pgRepo struct{ pool *pgxpool.Pool }

func NewPGRepo(pool *pgxpool.Pool) Repository { return &pgRepo{pool: pool} }

const doctorCols = `id, doctor_id, name, specialization, email, phone, department,
	availability, created_at`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.DoctorID, &d.Name, &d.Specialization, &d.Email,
		&d.Phone, &d.Department, &d.Availability, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *pgRepo) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+doctorCols+` FROM doctors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *pgRepo) GetByID(ctx context.Context, id int) (*Doctor, error) {
	return scanDoctor(r.pool.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
}

func (r *pgRepo) GetByDoctorID(ctx context.Context, doctorID string) (*Doctor, error) {
	return scanDoctor(r.pool.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctors WHERE doctor_id = $1`, doctorID))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *pgRepo) Create(ctx context.Context, d *Doctor) error {
	generated := d.DoctorID == ""
	for {
		if generated {
			d.DoctorID = ident.New(IDPrefix)
		}
		row := r.pool.QueryRow(ctx, `
			INSERT INTO doctors (doctor_id, name, specialization, email, phone, department, availability)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
			RETURNING id, created_at`,
			d.DoctorID, d.Name, d.Specialization, d.Email, d.Phone, d.Department, d.Availability)
		err := row.Scan(&d.ID, &d.CreatedAt)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			if generated {
				continue
			}
			return ErrDoctorIDTaken
		}
		return err
	}
}

func (r *pgRepo) Update(ctx context.Context, doctorID string, patch Patch) (*Doctor, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE doctors SET
			name = COALESCE($2, name),
			specialization = COALESCE($3, specialization),
			email = COALESCE($4, email),
			phone = COALESCE($5, phone),
			department = COALESCE($6, department),
			availability = COALESCE($7, availability)
		WHERE doctor_id = $1
		RETURNING `+doctorCols,
		doctorID, patch.Name, patch.Specialization, patch.Email, patch.Phone,
		patch.Department, patch.Availability)
	return scanDoctor(row)
}

func (r *pgRepo) Delete(ctx context.Context, doctorID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM doctors WHERE doctor_id = $1`, doctorID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
