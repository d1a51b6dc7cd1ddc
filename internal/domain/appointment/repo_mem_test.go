package appointment

import (
	"context"
	"testing"
)

func seedRepo(t *testing.T) Repository {
	t.Helper()
	repo := NewMemRepo()
	fixtures := []Appointment{
		{PatientID: "PT10834", DoctorID: "DR1001", Date: "2024-01-10", Time: "10:30", Status: StatusConfirmed},
		{PatientID: "PT10567", DoctorID: "DR1002", Date: "2024-01-10", Time: "11:15", Status: StatusWaiting},
		{PatientID: "PT10834", DoctorID: "DR1002", Date: "2024-01-11", Time: "09:00", Status: StatusScheduled},
		{PatientID: "PT10982", DoctorID: "DR1001", Date: "2024-01-11", Time: "14:30", Status: StatusScheduled},
	}
	for i := range fixtures {
		if err := repo.Create(context.Background(), &fixtures[i]); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
	return repo
}

func TestListByDate(t *testing.T) {
	repo := seedRepo(t)
	got, err := repo.ListByDate(context.Background(), "2024-01-10")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d appointments, want 2", len(got))
	}
	if got[0].Time != "10:30" || got[1].Time != "11:15" {
		t.Errorf("filter broke insertion order: %s, %s", got[0].Time, got[1].Time)
	}
}

func TestListByPatient(t *testing.T) {
	repo := seedRepo(t)
	got, err := repo.ListByPatient(context.Background(), "PT10834")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d appointments, want 2", len(got))
	}
	for _, a := range got {
		if a.PatientID != "PT10834" {
			t.Errorf("stray patientId %s", a.PatientID)
		}
	}
}

func TestListByDoctor(t *testing.T) {
	repo := seedRepo(t)
	got, err := repo.ListByDoctor(context.Background(), "DR1001")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d appointments, want 2", len(got))
	}
}

func TestListByDate_NoMatches(t *testing.T) {
	repo := seedRepo(t)
	got, err := repo.ListByDate(context.Background(), "2031-06-01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d appointments, want 0", len(got))
	}
}

func TestCreate_DuplicateSuppliedKeyRejected(t *testing.T) {
	repo := seedRepo(t)
	ctx := context.Background()
	a := &Appointment{AppointmentID: "AP9000", PatientID: "PT10834", DoctorID: "DR1001",
		Date: "2024-01-12", Time: "08:00", Status: StatusScheduled}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}
	dup := &Appointment{AppointmentID: "AP9000", PatientID: "PT10567", DoctorID: "DR1002",
		Date: "2024-01-13", Time: "09:00", Status: StatusScheduled}
	if err := repo.Create(ctx, dup); err != ErrAppointmentIDTaken {
		t.Fatalf("expected ErrAppointmentIDTaken, got %v", err)
	}
	got, err := repo.GetByAppointmentID(ctx, "AP9000")
	if err != nil || got.PatientID != "PT10834" {
		t.Errorf("first appointment no longer reachable by key: %+v %v", got, err)
	}
}

func TestDelete_RemovedFromFilters(t *testing.T) {
	repo := seedRepo(t)
	all, _ := repo.List(context.Background())
	if deleted, err := repo.Delete(context.Background(), all[0].AppointmentID); err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}
	got, _ := repo.ListByDate(context.Background(), "2024-01-10")
	if len(got) != 1 {
		t.Fatalf("got %d appointments after delete, want 1", len(got))
	}
}
