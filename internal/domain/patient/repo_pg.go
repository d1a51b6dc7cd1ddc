package patient

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

const patientCols = `id, patient_id, name, email, phone, address, date_of_birth,
	gender, blood_type, emergency_contact, allergies, created_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.PatientID, &p.Name, &p.Email, &p.Phone, &p.Address,
		&p.DateOfBirth, &p.Gender, &p.BloodType, &p.EmergencyContact, &p.Allergies, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pgRepo) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *pgRepo) GetByID(ctx context.Context, id int) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *pgRepo) GetByPatientID(ctx context.Context, patientID string) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE patient_id = $1`, patientID))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *pgRepo) Create(ctx context.Context, p *Patient) error {
	generated := p.PatientID == ""
	for {
		if generated {
			p.PatientID = ident.New(IDPrefix)
		}
		row := r.pool.QueryRow(ctx, `
			INSERT INTO patients (patient_id, name, email, phone, address, date_of_birth,
				gender, blood_type, emergency_contact, allergies)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			RETURNING id, created_at`,
			p.PatientID, p.Name, p.Email, p.Phone, p.Address, p.DateOfBirth,
			p.Gender, p.BloodType, p.EmergencyContact, p.Allergies)
		err := row.Scan(&p.ID, &p.CreatedAt)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			if generated {
				continue
			}
			return ErrPatientIDTaken
		}
		return err
	}
}

func (r *pgRepo) Update(ctx context.Context, patientID string, patch Patch) (*Patient, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE patients SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone),
			address = COALESCE($5, address),
			date_of_birth = COALESCE($6, date_of_birth),
			gender = COALESCE($7, gender),
			blood_type = COALESCE($8, blood_type),
			emergency_contact = COALESCE($9, emergency_contact),
			allergies = COALESCE($10, allergies)
		WHERE patient_id = $1
		RETURNING `+patientCols,
		patientID, patch.Name, patch.Email, patch.Phone, patch.Address,
		patch.DateOfBirth, patch.Gender, patch.BloodType, patch.EmergencyContact, patch.Allergies)
	return scanPatient(row)
}

func (r *pgRepo) Delete(ctx context.Context, patientID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE patient_id = $1`, patientID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
