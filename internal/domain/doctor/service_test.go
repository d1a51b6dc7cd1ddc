package doctor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemRepo())
}

func TestCreate_GeneratesDoctorID(t *testing.T) {
	svc := newTestService()
	d := &Doctor{Name: "Dr. Michael Brown", Specialization: "Cardiology"}
	if err := svc.Create(context.Background(), d); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(d.DoctorID, IDPrefix) {
		t.Errorf("doctorId %q does not start with %s", d.DoctorID, IDPrefix)
	}
	if d.CreatedAt.IsZero() {
		t.Error("createdAt not stamped")
	}
}

func TestCreate_SpecializationRequired(t *testing.T) {
	svc := newTestService()
	err := svc.Create(context.Background(), &Doctor{Name: "Dr. Sarah Johnson"})
	if err == nil {
		t.Fatal("expected error for missing specialization")
	}
}

func TestCreate_DuplicateDoctorIDRejected(t *testing.T) {
	svc := newTestService()
	d := &Doctor{DoctorID: "DR1001", Name: "Dr. Michael Brown", Specialization: "Cardiology"}
	if err := svc.Create(context.Background(), d); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := svc.Create(context.Background(), &Doctor{DoctorID: "DR1001", Name: "Dr. Sarah Johnson", Specialization: "Neurology"})
	if err != ErrDoctorIDTaken {
		t.Fatalf("expected ErrDoctorIDTaken, got %v", err)
	}
	got, err := svc.Get(context.Background(), "DR1001")
	if err != nil || got.Name != "Dr. Michael Brown" {
		t.Errorf("first doctor no longer reachable by id: %+v %v", got, err)
	}
}

func TestUpdate_AvailabilityReplaced(t *testing.T) {
	svc := newTestService()
	d := &Doctor{
		Name:           "Dr. James Wilson",
		Specialization: "Neurology",
		Availability:   json.RawMessage(`{"monday":["09:00-12:00"]}`),
	}
	if err := svc.Create(context.Background(), d); err != nil {
		t.Fatalf("create: %v", err)
	}

	next := json.RawMessage(`{"friday":["14:00-18:00"]}`)
	got, err := svc.Update(context.Background(), d.DoctorID, Patch{Availability: next})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if string(got.Availability) != string(next) {
		t.Errorf("availability = %s, want %s", got.Availability, next)
	}
	if got.Specialization != "Neurology" {
		t.Errorf("specialization changed to %q", got.Specialization)
	}
}

func TestGet_Missing(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Get(context.Background(), "DR9999"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
