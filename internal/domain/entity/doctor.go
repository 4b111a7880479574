package entity

import "github.com/shopspring/decimal"

// Doctor is the canonical doctor record. Every field is always populated,
// with defaults standing in for whatever the upstream record lacked.
type Doctor struct {
	ID                string
	Name              string
	Image             string
	Specialties       []string
	ExperienceYears   int
	Fee               decimal.Decimal
	ConsultationModes ConsultationModes
	Languages         []string
	Location          string
	ClinicName        string
}

type ConsultationModes struct {
	VideoConsult bool
	InClinic     bool
}

const UnknownDoctorName = "Unknown Doctor"
