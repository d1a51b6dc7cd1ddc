package sandbox

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicore/hms/internal/domain/appointment"
	"github.com/medicore/hms/internal/domain/billing"
	"github.com/medicore/hms/internal/domain/doctor"
	"github.com/medicore/hms/internal/domain/identity"
	"github.com/medicore/hms/internal/domain/medrecord"
	"github.com/medicore/hms/internal/domain/patient"
	"github.com/medicore/hms/internal/domain/resource"
)

func newTestStores() Stores {
	return Stores{
		Users:        identity.NewMemRepo(),
		Patients:     patient.NewMemRepo(),
		Doctors:      doctor.NewMemRepo(),
		Appointments: appointment.NewMemRepo(),
		Records:      medrecord.NewMemRepo(),
		Billings:     billing.NewMemRepo(),
		Resources:    resource.NewMemRepo(),
	}
}

func TestRun_PopulatesAllCollections(t *testing.T) {
	stores := newTestStores()
	s := NewSeeder(stores, zerolog.Nop())
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	ctx := context.Background()
	if patients, _ := stores.Patients.List(ctx); len(patients) != 8 {
		t.Errorf("patients = %d, want 8", len(patients))
	}
	if doctors, _ := stores.Doctors.List(ctx); len(doctors) != 4 {
		t.Errorf("doctors = %d, want 4", len(doctors))
	}
	if appts, _ := stores.Appointments.List(ctx); len(appts) != 4 {
		t.Errorf("appointments = %d, want 4", len(appts))
	}
	if records, _ := stores.Records.List(ctx); len(records) != 2 {
		t.Errorf("medical records = %d, want 2", len(records))
	}
	if bills, _ := stores.Billings.List(ctx); len(bills) != 4 {
		t.Errorf("billings = %d, want 4", len(bills))
	}
	if resources, _ := stores.Resources.List(ctx); len(resources) != 4 {
		t.Errorf("resources = %d, want 4", len(resources))
	}
}

func TestRun_ReferencesAreConsistent(t *testing.T) {
	stores := newTestStores()
	s := NewSeeder(stores, zerolog.Nop())
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	ctx := context.Background()
	appts, _ := stores.Appointments.List(ctx)
	for _, a := range appts {
		if _, err := stores.Patients.GetByPatientID(ctx, a.PatientID); err != nil {
			t.Errorf("%s references missing patient %s", a.AppointmentID, a.PatientID)
		}
		if _, err := stores.Doctors.GetByDoctorID(ctx, a.DoctorID); err != nil {
			t.Errorf("%s references missing doctor %s", a.AppointmentID, a.DoctorID)
		}
	}
}

func TestRun_AppointmentsDatedToday(t *testing.T) {
	stores := newTestStores()
	s := NewSeeder(stores, zerolog.Nop())
	s.now = func() time.Time {
		return time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	}
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	appts, _ := stores.Appointments.List(context.Background())
	for _, a := range appts {
		if a.Date != "2024-03-15" {
			t.Errorf("%s dated %s, want 2024-03-15", a.AppointmentID, a.Date)
		}
	}
}

func TestRun_AdminUserSeeded(t *testing.T) {
	stores := newTestStores()
	s := NewSeeder(stores, zerolog.Nop())
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	admin, err := stores.Users.GetByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if admin.Role != "admin" {
		t.Errorf("role = %q, want admin", admin.Role)
	}

	drj, err := stores.Users.GetByUsername(context.Background(), "drjohnson")
	if err != nil {
		t.Fatalf("get drjohnson: %v", err)
	}
	if drj.Avatar == nil {
		t.Error("doctor user missing avatar")
	}
}
