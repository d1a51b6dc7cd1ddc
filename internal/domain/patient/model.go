package patient

import "time"

// IDPrefix is the business-key prefix for generated patient ids.
const IDPrefix = "PT"

// Patient is a registered patient. ID is the internal surrogate key;
// PatientID is the external business key used for all cross-entity
// references and API addressing.
type Patient struct {
	ID               int       `json:"id"`
	PatientID        string    `json:"patientId"`
	Name             string    `json:"name"`
	Email            *string   `json:"email,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	Address          *string   `json:"address,omitempty"`
	DateOfBirth      *string   `json:"dateOfBirth,omitempty"`
	Gender           *string   `json:"gender,omitempty"`
	BloodType        *string   `json:"bloodType,omitempty"`
	EmergencyContact *string   `json:"emergencyContact,omitempty"`
	Allergies        *string   `json:"allergies,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Patch carries a partial update. Only non-nil fields overwrite the stored
// record; the business key and internal id are immutable.
type Patch struct {
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Address          *string `json:"address,omitempty"`
	DateOfBirth      *string `json:"dateOfBirth,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	BloodType        *string `json:"bloodType,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`
	Allergies        *string `json:"allergies,omitempty"`
}

func (p Patch) apply(dst *Patient) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Email != nil {
		dst.Email = p.Email
	}
	if p.Phone != nil {
		dst.Phone = p.Phone
	}
	if p.Address != nil {
		dst.Address = p.Address
	}
	if p.DateOfBirth != nil {
		dst.DateOfBirth = p.DateOfBirth
	}
	if p.Gender != nil {
		dst.Gender = p.Gender
	}
	if p.BloodType != nil {
		dst.BloodType = p.BloodType
	}
	if p.EmergencyContact != nil {
		dst.EmergencyContact = p.EmergencyContact
	}
	if p.Allergies != nil {
		dst.Allergies = p.Allergies
	}
}
