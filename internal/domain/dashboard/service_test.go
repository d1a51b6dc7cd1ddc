package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/medicore/hms/internal/domain/appointment"
)

func fixedNow() time.Time {
	return time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, dates ...string) *Service {
	t.Helper()
	repo := appointment.NewMemRepo()
	for i, date := range dates {
		a := &appointment.Appointment{
			PatientID: "PT10834",
			DoctorID:  "DR1001",
			Date:      date,
			Time:      "10:00",
			Status:    appointment.StatusScheduled,
		}
		if err := repo.Create(context.Background(), a); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
	svc := NewService(repo)
	svc.now = fixedNow
	return svc
}

func TestStats_CountsTodayAppointments(t *testing.T) {
	svc := newTestService(t, "2024-01-10", "2024-01-10", "2024-01-11")
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TodayAppointments != 2 {
		t.Errorf("todayAppointments = %d, want 2", stats.TodayAppointments)
	}
}

func TestStats_EmptyDayFallsBackToDemoFigure(t *testing.T) {
	svc := newTestService(t, "2024-01-11")
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TodayAppointments != 24 {
		t.Errorf("todayAppointments = %d, want fallback 24", stats.TodayAppointments)
	}
}

func TestStats_FixedFigures(t *testing.T) {
	svc := newTestService(t)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.AdmittedPatients != 137 || stats.AvailableDoctors != 8 {
		t.Errorf("unexpected census figures: %+v", stats)
	}
	if stats.TodayRevenue != 9834 || stats.OccupancyRate != 85 {
		t.Errorf("unexpected finance figures: %+v", stats)
	}
	if stats.OnLeaveCount != 2 || stats.WeekChange != 8.2 {
		t.Errorf("unexpected staffing figures: %+v", stats)
	}
}
