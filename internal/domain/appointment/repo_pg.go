package appointment

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

const appointmentCols = `id, appointment_id, patient_id, doctor_id, date, time,
	status, notes, created_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.AppointmentID, &a.PatientID, &a.DoctorID, &a.Date,
		&a.Time, &a.Status, &a.Notes, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *pgRepo) queryMany(ctx context.Context, sql string, args ...any) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *pgRepo) List(ctx context.Context) ([]*Appointment, error) {
	return r.queryMany(ctx, `SELECT `+appointmentCols+` FROM appointments ORDER BY id`)
}

func (r *pgRepo) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	return r.queryMany(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE patient_id = $1 ORDER BY id`, patientID)
}

func (r *pgRepo) ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	return r.queryMany(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE doctor_id = $1 ORDER BY id`, doctorID)
}

func (r *pgRepo) ListByDate(ctx context.Context, date string) ([]*Appointment, error) {
	return r.queryMany(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE date = $1 ORDER BY id`, date)
}

func (r *pgRepo) GetByID(ctx context.Context, id int) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE id = $1`, id))
}

func (r *pgRepo) GetByAppointmentID(ctx context.Context, appointmentID string) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE appointment_id = $1`, appointmentID))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *pgRepo) Create(ctx context.Context, a *Appointment) error {
	generated := a.AppointmentID == ""
	for {
		if generated {
			a.AppointmentID = ident.New(IDPrefix)
		}
		row := r.pool.QueryRow(ctx, `
			INSERT INTO appointments (appointment_id, patient_id, doctor_id, date, time, status, notes)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
			RETURNING id, created_at`,
			a.AppointmentID, a.PatientID, a.DoctorID, a.Date, a.Time, a.Status, a.Notes)
		err := row.Scan(&a.ID, &a.CreatedAt)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			if generated {
				continue
			}
			return ErrAppointmentIDTaken
		}
		return err
	}
}

func (r *pgRepo) Update(ctx context.Context, appointmentID string, patch Patch) (*Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE appointments SET
			patient_id = COALESCE($2, patient_id),
			doctor_id = COALESCE($3, doctor_id),
			date = COALESCE($4, date),
			time = COALESCE($5, time),
			status = COALESCE($6, status),
			notes = COALESCE($7, notes)
		WHERE appointment_id = $1
		RETURNING `+appointmentCols,
		appointmentID, patch.PatientID, patch.DoctorID, patch.Date, patch.Time,
		patch.Status, patch.Notes)
	return scanAppointment(row)
}

func (r *pgRepo) Delete(ctx context.Context, appointmentID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE appointment_id = $1`, appointmentID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
