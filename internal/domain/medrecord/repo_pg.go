package medrecord

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

const recordCols = `id, record_id, patient_id, doctor_id, date, diagnosis,
	treatment, medications, notes, created_at`

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.RecordID, &rec.PatientID, &rec.DoctorID, &rec.Date,
		&rec.Diagnosis, &rec.Treatment, &rec.Medications, &rec.Notes, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *pgRepo) queryMany(ctx context.Context, sql string, args ...any) ([]*Record, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

func (r *pgRepo) List(ctx context.Context) ([]*Record, error) {
	return r.queryMany(ctx, `SELECT `+recordCols+` FROM medical_records ORDER BY id`)
}

func (r *pgRepo) ListByPatient(ctx context.Context, patientID string) ([]*Record, error) {
	return r.queryMany(ctx, `SELECT `+recordCols+` FROM medical_records WHERE patient_id = $1 ORDER BY id`, patientID)
}

func (r *pgRepo) GetByID(ctx context.Context, id int) (*Record, error) {
	return scanRecord(r.pool.QueryRow(ctx, `SELECT `+recordCols+` FROM medical_records WHERE id = $1`, id))
}

func (r *pgRepo) GetByRecordID(ctx context.Context, recordID string) (*Record, error) {
	return scanRecord(r.pool.QueryRow(ctx, `SELECT `+recordCols+` FROM medical_records WHERE record_id = $1`, recordID))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *pgRepo) Create(ctx context.Context, rec *Record) error {
	generated := rec.RecordID == ""
	for {
		if generated {
			rec.RecordID = ident.New(IDPrefix)
		}
		row := r.pool.QueryRow(ctx, `
			INSERT INTO medical_records (record_id, patient_id, doctor_id, date, diagnosis, treatment, medications, notes)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			RETURNING id, created_at`,
			rec.RecordID, rec.PatientID, rec.DoctorID, rec.Date, rec.Diagnosis, rec.Treatment, rec.Medications, rec.Notes)
		err := row.Scan(&rec.ID, &rec.CreatedAt)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			if generated {
				continue
			}
			return ErrRecordIDTaken
		}
		return err
	}
}

func (r *pgRepo) Update(ctx context.Context, recordID string, patch Patch) (*Record, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE medical_records SET
			patient_id = COALESCE($2, patient_id),
			doctor_id = COALESCE($3, doctor_id),
			date = COALESCE($4, date),
			diagnosis = COALESCE($5, diagnosis),
			treatment = COALESCE($6, treatment),
			medications = COALESCE($7, medications),
			notes = COALESCE($8, notes)
		WHERE record_id = $1
		RETURNING `+recordCols,
		recordID, patch.PatientID, patch.DoctorID, patch.Date, patch.Diagnosis,
		patch.Treatment, patch.Medications, patch.Notes)
	return scanRecord(row)
}

func (r *pgRepo) Delete(ctx context.Context, recordID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM medical_records WHERE record_id = $1`, recordID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
