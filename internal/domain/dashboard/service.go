package dashboard

import (
	"context"
	"time"

	"github.com/medicore/hms/internal/domain/appointment"
)

// Stats is the aggregate shown on the admin landing page. Apart from
// todayAppointments the numbers are fixed demo figures; the systems that
// would feed them (admissions, payroll, revenue) are out of scope.
type Stats struct {
	TodayAppointments int     `json:"todayAppointments"`
	AdmittedPatients  int     `json:"admittedPatients"`
	AvailableDoctors  int     `json:"availableDoctors"`
	TodayRevenue      float64 `json:"todayRevenue"`
	OccupancyRate     float64 `json:"occupancyRate"`
	OnLeaveCount      int     `json:"onLeaveCount"`
	WeekChange        float64 `json:"weekChange"`
}

// AppointmentSource is the slice of the appointment store the dashboard
// needs.
type AppointmentSource interface {
	ListByDate(ctx context.Context, date string) ([]*appointment.Appointment, error)
}

type Service struct {
	appointments AppointmentSource
	now          func() time.Time
}

func NewService(appointments AppointmentSource) *Service {
	return &Service{appointments: appointments, now: time.Now}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	today := s.now().Format("2006-01-02")
	todays, err := s.appointments.ListByDate(ctx, today)
	if err != nil {
		return nil, err
	}

	count := len(todays)
	if count == 0 {
		// Demo fallback so a freshly seeded store never shows an empty
		// dashboard.
		count = 24
	}

	return &Stats{
		TodayAppointments: count,
		AdmittedPatients:  137,
		AvailableDoctors:  8,
		TodayRevenue:      9834,
		OccupancyRate:     85,
		OnLeaveCount:      2,
		WeekChange:        8.2,
	}, nil
}
