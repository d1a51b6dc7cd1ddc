// Package sandbox loads the demo dataset every fresh store starts with.
// The fixtures are internally consistent: seeded appointments, records and
// billings reference only seeded patient and doctor keys.
package sandbox

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicore/hms/internal/domain/appointment"
	"github.com/medicore/hms/internal/domain/billing"
	"github.com/medicore/hms/internal/domain/doctor"
	"github.com/medicore/hms/internal/domain/identity"
	"github.com/medicore/hms/internal/domain/medrecord"
	"github.com/medicore/hms/internal/domain/patient"
	"github.com/medicore/hms/internal/domain/resource"
)

type Stores struct {
	Users        identity.Repository
	Patients     patient.Repository
	Doctors      doctor.Repository
	Appointments appointment.Repository
	Records      medrecord.Repository
	Billings     billing.Repository
	Resources    resource.Repository
}

type Seeder struct {
	stores Stores
	log    zerolog.Logger
	now    func() time.Time
}

func NewSeeder(stores Stores, log zerolog.Logger) *Seeder {
	return &Seeder{stores: stores, log: log, now: time.Now}
}

func strPtr(s string) *string { return &s }

// Run populates the stores in a fixed order so generated keys and
// cross-references are deterministic within a process run. Seeded
// appointments are dated today so the dashboard has something to count.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := s.seedResources(ctx); err != nil {
		return fmt.Errorf("seed resources: %w", err)
	}
	if err := s.seedDoctors(ctx); err != nil {
		return fmt.Errorf("seed doctors: %w", err)
	}
	if err := s.seedPatients(ctx); err != nil {
		return fmt.Errorf("seed patients: %w", err)
	}
	if err := s.seedAppointments(ctx); err != nil {
		return fmt.Errorf("seed appointments: %w", err)
	}
	if err := s.seedMedicalRecords(ctx); err != nil {
		return fmt.Errorf("seed medical records: %w", err)
	}
	if err := s.seedBillings(ctx); err != nil {
		return fmt.Errorf("seed billings: %w", err)
	}
	s.log.Info().Msg("demo dataset seeded")
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	users := []identity.User{
		{
			Username: "admin",
			Password: "admin123",
			Role:     "admin",
			Name:     "System Administrator",
			Email:    "admin@medicare.com",
		},
		{
			Username: "drjohnson",
			Password: "doctor123",
			Role:     "doctor",
			Name:     "Dr. Sarah Johnson",
			Email:    "sarah.johnson@medicare.com",
			Avatar:   strPtr("https://images.unsplash.com/photo-1559839734-2b71ea197ec2?ixlib=rb-1.2.1&auto=format&fit=crop&w=256&q=80"),
		},
	}
	for i := range users {
		if err := s.stores.Users.Create(ctx, &users[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedResources(ctx context.Context) error {
	resources := []resource.Resource{
		{ResourceName: "beds", TotalCount: 160, UsedCount: 137},
		{ResourceName: "icu", TotalCount: 20, UsedCount: 16},
		{ResourceName: "operating-rooms", TotalCount: 6, UsedCount: 3},
		{ResourceName: "ventilators", TotalCount: 30, UsedCount: 12},
	}
	for i := range resources {
		if err := s.stores.Resources.Create(ctx, &resources[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedDoctors(ctx context.Context) error {
	doctors := []doctor.Doctor{
		{
			DoctorID:       "DR1001",
			Name:           "Dr. Michael Brown",
			Specialization: "Cardiology",
			Email:          strPtr("michael.brown@medicare.com"),
			Phone:          strPtr("555-123-4567"),
			Department:     strPtr("Cardiology"),
		},
		{
			DoctorID:       "DR1002",
			Name:           "Dr. Sarah Johnson",
			Specialization: "General Medicine",
			Email:          strPtr("sarah.johnson@medicare.com"),
			Phone:          strPtr("555-123-4568"),
			Department:     strPtr("General"),
		},
		{
			DoctorID:       "DR1003",
			Name:           "Dr. Amanda Rodriguez",
			Specialization: "Orthopedics",
			Email:          strPtr("amanda.rodriguez@medicare.com"),
			Phone:          strPtr("555-123-4569"),
			Department:     strPtr("Orthopedics"),
		},
		{
			DoctorID:       "DR1004",
			Name:           "Dr. James Wilson",
			Specialization: "Neurology",
			Email:          strPtr("james.wilson@medicare.com"),
			Phone:          strPtr("555-123-4570"),
			Department:     strPtr("Neurology"),
		},
	}
	for i := range doctors {
		if err := s.stores.Doctors.Create(ctx, &doctors[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedPatients(ctx context.Context) error {
	patients := []patient.Patient{
		{
			PatientID:   "PT10834",
			Name:        "Emma Wilson",
			Email:       strPtr("emma.wilson@example.com"),
			Phone:       strPtr("555-234-5678"),
			DateOfBirth: strPtr("1985-06-15"),
			Gender:      strPtr("Female"),
			BloodType:   strPtr("A+"),
		},
		{
			PatientID:   "PT10567",
			Name:        "Robert Martinez",
			Email:       strPtr("robert.martinez@example.com"),
			Phone:       strPtr("555-234-5679"),
			DateOfBirth: strPtr("1978-12-03"),
			Gender:      strPtr("Male"),
			BloodType:   strPtr("O-"),
		},
		{
			PatientID:   "PT10982",
			Name:        "David Lee",
			Email:       strPtr("david.lee@example.com"),
			Phone:       strPtr("555-234-5680"),
			DateOfBirth: strPtr("1990-04-22"),
			Gender:      strPtr("Male"),
			BloodType:   strPtr("B+"),
		},
		{
			PatientID:   "PT10742",
			Name:        "Maria Garcia",
			Email:       strPtr("maria.garcia@example.com"),
			Phone:       strPtr("555-234-5681"),
			DateOfBirth: strPtr("1983-09-28"),
			Gender:      strPtr("Female"),
			BloodType:   strPtr("AB-"),
		},
		{
			PatientID:   "PT10456",
			Name:        "Jennifer Anderson",
			Email:       strPtr("jennifer.anderson@example.com"),
			Phone:       strPtr("555-234-5682"),
			DateOfBirth: strPtr("1975-05-10"),
			Gender:      strPtr("Female"),
			BloodType:   strPtr("O+"),
		},
		{
			PatientID:   "PT10789",
			Name:        "Thomas Wright",
			Email:       strPtr("thomas.wright@example.com"),
			Phone:       strPtr("555-234-5683"),
			DateOfBirth: strPtr("1992-11-18"),
			Gender:      strPtr("Male"),
			BloodType:   strPtr("A-"),
		},
		{
			PatientID:   "PT10654",
			Name:        "Sophia Kim",
			Email:       strPtr("sophia.kim@example.com"),
			Phone:       strPtr("555-234-5684"),
			DateOfBirth: strPtr("1988-07-31"),
			Gender:      strPtr("Female"),
			BloodType:   strPtr("B-"),
		},
		{
			PatientID:   "PT10321",
			Name:        "Alice Chen",
			Email:       strPtr("alice.chen@example.com"),
			Phone:       strPtr("555-234-5685"),
			DateOfBirth: strPtr("1995-02-14"),
			Gender:      strPtr("Female"),
			BloodType:   strPtr("AB+"),
		},
	}
	for i := range patients {
		if err := s.stores.Patients.Create(ctx, &patients[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedAppointments(ctx context.Context) error {
	today := s.now().Format("2006-01-02")
	appointments := []appointment.Appointment{
		{
			AppointmentID: "AP1001",
			PatientID:     "PT10834",
			DoctorID:      "DR1001",
			Date:          today,
			Time:          "10:30",
			Status:        appointment.StatusConfirmed,
			Notes:         strPtr("Regular checkup"),
		},
		{
			AppointmentID: "AP1002",
			PatientID:     "PT10567",
			DoctorID:      "DR1002",
			Date:          today,
			Time:          "11:15",
			Status:        appointment.StatusWaiting,
			Notes:         strPtr("Follow-up consultation"),
		},
		{
			AppointmentID: "AP1003",
			PatientID:     "PT10982",
			DoctorID:      "DR1003",
			Date:          today,
			Time:          "13:00",
			Status:        appointment.StatusInProgress,
			Notes:         strPtr("Post-surgery checkup"),
		},
		{
			AppointmentID: "AP1004",
			PatientID:     "PT10742",
			DoctorID:      "DR1004",
			Date:          today,
			Time:          "14:30",
			Status:        appointment.StatusConfirmed,
			Notes:         strPtr("Neurological assessment"),
		},
	}
	for i := range appointments {
		if err := s.stores.Appointments.Create(ctx, &appointments[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedMedicalRecords(ctx context.Context) error {
	records := []medrecord.Record{
		{
			RecordID:    "MR1001",
			PatientID:   "PT10834",
			DoctorID:    "DR1001",
			Date:        "2023-10-01",
			Diagnosis:   strPtr("Hypertension"),
			Treatment:   strPtr("Prescribed lisinopril 10mg daily"),
			Medications: strPtr("Lisinopril 10mg"),
			Notes:       strPtr("Patient reported occasional headaches"),
		},
		{
			RecordID:    "MR1002",
			PatientID:   "PT10567",
			DoctorID:    "DR1002",
			Date:        "2023-10-05",
			Diagnosis:   strPtr("Upper respiratory infection"),
			Treatment:   strPtr("Prescribed antibiotics for 7 days"),
			Medications: strPtr("Amoxicillin 500mg"),
			Notes:       strPtr("Follow up if symptoms persist"),
		},
	}
	for i := range records {
		if err := s.stores.Records.Create(ctx, &records[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedBillings(ctx context.Context) error {
	billings := []billing.Billing{
		{
			BillingID:     "BL1001",
			PatientID:     "PT10834",
			Date:          "2023-10-16",
			Description:   "Insurance claim processed",
			Amount:        "1850.00",
			Status:        billing.StatusPaid,
			PaymentMethod: strPtr("Insurance"),
			InsuranceInfo: strPtr("BlueCross #12345"),
		},
		{
			BillingID:     "BL1002",
			PatientID:     "PT10982",
			Date:          "2023-10-15",
			Description:   "Payment pending",
			Amount:        "732.50",
			Status:        billing.StatusPending,
			PaymentMethod: strPtr("Credit Card"),
			InsuranceInfo: strPtr("Aetna #54321"),
		},
		{
			BillingID:     "BL1003",
			PatientID:     "PT10789",
			Date:          "2023-10-15",
			Description:   "Claim rejected",
			Amount:        "1245.00",
			Status:        billing.StatusPending,
			PaymentMethod: strPtr("Insurance"),
			InsuranceInfo: strPtr("United #67890"),
		},
		{
			BillingID:     "BL1004",
			PatientID:     "PT10321",
			Date:          "2023-10-14",
			Description:   "Invoice generated",
			Amount:        "578.25",
			Status:        billing.StatusPending,
			PaymentMethod: strPtr("Cash"),
			InsuranceInfo: strPtr(""),
		},
	}
	for i := range billings {
		if err := s.stores.Billings.Create(ctx, &billings[i]); err != nil {
			return err
		}
	}
	return nil
}
