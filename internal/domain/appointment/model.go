package appointment

import "time"

// IDPrefix is the business-key prefix for generated appointment ids.
const IDPrefix = "AP"

// Statuses an appointment can move through. Transitions are not enforced;
// the front desk corrects records freely.
const (
	StatusScheduled  = "scheduled"
	StatusConfirmed  = "confirmed"
	StatusCheckingIn = "checking-in"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no-show"
	StatusWaiting    = "waiting"
)

var validStatuses = map[string]bool{
	StatusScheduled:  true,
	StatusConfirmed:  true,
	StatusCheckingIn: true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
	StatusNoShow:     true,
	StatusWaiting:    true,
}

type Appointment struct {
	ID            int       `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	PatientID     string    `json:"patientId"`
	DoctorID      string    `json:"doctorId"`
	Date          string    `json:"date"` // YYYY-MM-DD
	Time          string    `json:"time"` // HH:MM
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Patch struct {
	PatientID *string `json:"patientId,omitempty"`
	DoctorID  *string `json:"doctorId,omitempty"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (p Patch) apply(dst *Appointment) {
	if p.PatientID != nil {
		dst.PatientID = *p.PatientID
	}
	if p.DoctorID != nil {
		dst.DoctorID = *p.DoctorID
	}
	if p.Date != nil {
		dst.Date = *p.Date
	}
	if p.Time != nil {
		dst.Time = *p.Time
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.Notes != nil {
		dst.Notes = p.Notes
	}
}
