package billing

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

const billingCols = `id, billing_id, patient_id, date, description, amount, status,
	payment_method, insurance_info, created_at`

func scanBilling(row pgx.Row) (*Billing, error) {
	var b Billing
	err := row.Scan(&b.ID, &b.BillingID, &b.PatientID, &b.Date, &b.Description,
		&b.Amount, &b.Status, &b.PaymentMethod, &b.InsuranceInfo, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgRepo) queryMany(ctx context.Context, sql string, args ...any) ([]*Billing, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Billing
	for rows.Next() {
		b, err := scanBilling(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (r *pgRepo) List(ctx context.Context) ([]*Billing, error) {
	return r.queryMany(ctx, `SELECT `+billingCols+` FROM billings ORDER BY id`)
}

func (r *pgRepo) ListByPatient(ctx context.Context, patientID string) ([]*Billing, error) {
	return r.queryMany(ctx, `SELECT `+billingCols+` FROM billings WHERE patient_id = $1 ORDER BY id`, patientID)
}

func (r *pgRepo) GetByID(ctx context.Context, id int) (*Billing, error) {
	return scanBilling(r.pool.QueryRow(ctx, `SELECT `+billingCols+` FROM billings WHERE id = $1`, id))
}

func (r *pgRepo) GetByBillingID(ctx context.Context, billingID string) (*Billing, error) {
	return scanBilling(r.pool.QueryRow(ctx, `SELECT `+billingCols+` FROM billings WHERE billing_id = $1`, billingID))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *pgRepo) Create(ctx context.Context, b *Billing) error {
	generated := b.BillingID == ""
	for {
		if generated {
			b.BillingID = ident.New(IDPrefix)
		}
		row := r.pool.QueryRow(ctx, `
			INSERT INTO billings (billing_id, patient_id, date, description, amount, status, payment_method, insurance_info)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			RETURNING id, created_at`,
			b.BillingID, b.PatientID, b.Date, b.Description, b.Amount, b.Status,
			b.PaymentMethod, b.InsuranceInfo)
		err := row.Scan(&b.ID, &b.CreatedAt)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			if generated {
				continue
			}
			return ErrBillingIDTaken
		}
		return err
	}
}

func (r *pgRepo) Update(ctx context.Context, billingID string, patch Patch) (*Billing, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE billings SET
			patient_id = COALESCE($2, patient_id),
			date = COALESCE($3, date),
			description = COALESCE($4, description),
			amount = COALESCE($5, amount),
			status = COALESCE($6, status),
			payment_method = COALESCE($7, payment_method),
			insurance_info = COALESCE($8, insurance_info)
		WHERE billing_id = $1
		RETURNING `+billingCols,
		billingID, patch.PatientID, patch.Date, patch.Description, patch.Amount,
		patch.Status, patch.PaymentMethod, patch.InsuranceInfo)
	return scanBilling(row)
}

func (r *pgRepo) Delete(ctx context.Context, billingID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM billings WHERE billing_id = $1`, billingID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
