package medrecord

import "time"

// IDPrefix is the business-key prefix for generated record ids.
const IDPrefix = "MR"

type Record struct {
	ID          int       `json:"id"`
	RecordID    string    `json:"recordId"`
	PatientID   string    `json:"patientId"`
	DoctorID    string    `json:"doctorId"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Diagnosis   *string   `json:"diagnosis,omitempty"`
	Treatment   *string   `json:"treatment,omitempty"`
	Medications *string   `json:"medications,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Patch struct {
	PatientID   *string `json:"patientId,omitempty"`
	DoctorID    *string `json:"doctorId,omitempty"`
	Date        *string `json:"date,omitempty"`
	Diagnosis   *string `json:"diagnosis,omitempty"`
	Treatment   *string `json:"treatment,omitempty"`
	Medications *string `json:"medications,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (p Patch) apply(dst *Record) {
	if p.PatientID != nil {
		dst.PatientID = *p.PatientID
	}
	if p.DoctorID != nil {
		dst.DoctorID = *p.DoctorID
	}
	if p.Date != nil {
		dst.Date = *p.Date
	}
	if p.Diagnosis != nil {
		dst.Diagnosis = p.Diagnosis
	}
	if p.Treatment != nil {
		dst.Treatment = p.Treatment
	}
	if p.Medications != nil {
		dst.Medications = p.Medications
	}
	if p.Notes != nil {
		dst.Notes = p.Notes
	}
}
