package medrecord

import (
	"context"
	"strings"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemRepo())
}

func TestCreate_GeneratesRecordID(t *testing.T) {
	svc := newTestService()
	rec := &Record{PatientID: "PT10834", DoctorID: "DR1001", Date: "2024-01-08"}
	if err := svc.Create(context.Background(), rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(rec.RecordID, IDPrefix) {
		t.Errorf("recordId %q does not start with %s", rec.RecordID, IDPrefix)
	}
}

func TestCreate_RequiredFields(t *testing.T) {
	svc := newTestService()
	cases := []Record{
		{DoctorID: "DR1001", Date: "2024-01-08"},
		{PatientID: "PT10834", Date: "2024-01-08"},
		{PatientID: "PT10834", DoctorID: "DR1001"},
	}
	for i, rec := range cases {
		if err := svc.Create(context.Background(), &rec); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestCreate_DuplicateRecordIDRejected(t *testing.T) {
	svc := newTestService()
	rec := &Record{RecordID: "MR1001", PatientID: "PT10834", DoctorID: "DR1001", Date: "2024-01-08"}
	if err := svc.Create(context.Background(), rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := svc.Create(context.Background(), &Record{RecordID: "MR1001", PatientID: "PT10567", DoctorID: "DR1002", Date: "2024-01-09"})
	if err != ErrRecordIDTaken {
		t.Fatalf("expected ErrRecordIDTaken, got %v", err)
	}
}

func TestListByPatient(t *testing.T) {
	svc := newTestService()
	records := []Record{
		{PatientID: "PT10834", DoctorID: "DR1001", Date: "2024-01-08"},
		{PatientID: "PT10567", DoctorID: "DR1003", Date: "2024-01-09"},
		{PatientID: "PT10834", DoctorID: "DR1002", Date: "2024-01-15"},
	}
	for i := range records {
		if err := svc.Create(context.Background(), &records[i]); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	got, err := svc.ListByPatient(context.Background(), "PT10834")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Date != "2024-01-08" || got[1].Date != "2024-01-15" {
		t.Error("filter broke insertion order")
	}
}

func TestUpdate_DiagnosisOnly(t *testing.T) {
	svc := newTestService()
	notes := "Follow up in two weeks"
	rec := &Record{PatientID: "PT10834", DoctorID: "DR1001", Date: "2024-01-08", Notes: &notes}
	if err := svc.Create(context.Background(), rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	dx := "Hypertension Stage 1"
	got, err := svc.Update(context.Background(), rec.RecordID, Patch{Diagnosis: &dx})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Diagnosis == nil || *got.Diagnosis != dx {
		t.Errorf("diagnosis not applied: %v", got.Diagnosis)
	}
	if got.Notes == nil || *got.Notes != notes {
		t.Error("update touched unpatched notes")
	}
}
