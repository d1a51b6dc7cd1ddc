package doctor

import (
	"encoding/json"
	"time"
)

// IDPrefix is the business-key prefix for generated doctor ids.
const IDPrefix = "DR"

type Doctor struct {
	ID             int             `json:"id"`
	DoctorID       string          `json:"doctorId"`
	Name           string          `json:"name"`
	Specialization string          `json:"specialization"`
	Email          *string         `json:"email,omitempty"`
	Phone          *string         `json:"phone,omitempty"`
	Department     *string         `json:"department,omitempty"`
	Availability   json.RawMessage `json:"availability,omitempty"` // opaque schedule blob
	CreatedAt      time.Time       `json:"createdAt"`
}

type Patch struct {
	Name           *string         `json:"name,omitempty"`
	Specialization *string         `json:"specialization,omitempty"`
	Email          *string         `json:"email,omitempty"`
	Phone          *string         `json:"phone,omitempty"`
	Department     *string         `json:"department,omitempty"`
	Availability   json.RawMessage `json:"availability,omitempty"`
}

func (p Patch) apply(dst *Doctor) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Specialization != nil {
		dst.Specialization = *p.Specialization
	}
	if p.Email != nil {
		dst.Email = p.Email
	}
	if p.Phone != nil {
		dst.Phone = p.Phone
	}
	if p.Department != nil {
		dst.Department = p.Department
	}
	if p.Availability != nil {
		dst.Availability = p.Availability
	}
}
