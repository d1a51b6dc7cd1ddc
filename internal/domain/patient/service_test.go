package patient

import (
	"context"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemRepo())
}

func TestCreate(t *testing.T) {
	svc := newTestService()
	p := &Patient{Name: "Jane Doe"}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PatientID == "" {
		t.Error("expected a generated patientId")
	}
}

func TestCreate_NameRequired(t *testing.T) {
	svc := newTestService()
	if err := svc.Create(context.Background(), &Patient{}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestUpdate_EmptyNameRejected(t *testing.T) {
	svc := newTestService()
	p := &Patient{Name: "Jane Doe"}
	svc.Create(context.Background(), p)

	empty := ""
	if _, err := svc.Update(context.Background(), p.PatientID, Patch{Name: &empty}); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestGet_Missing(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Get(context.Background(), "PT404"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
