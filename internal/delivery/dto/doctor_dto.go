package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Wire DTOs

// RawDoctor is one upstream doctor record. Every field is kept as raw JSON so
// that a missing or wrong-typed field never fails the decode; the converter
// decides what each field is worth.
type RawDoctor struct {
	ID                 json.RawMessage `json:"id"`
	Name               json.RawMessage `json:"name"`
	NameInitials       json.RawMessage `json:"name_initials"`
	Photo              json.RawMessage `json:"photo"`
	DoctorIntroduction json.RawMessage `json:"doctor_introduction"`
	Specialities       json.RawMessage `json:"specialities"`
	Fees               json.RawMessage `json:"fees"`
	Experience         json.RawMessage `json:"experience"`
	Languages          json.RawMessage `json:"languages"`
	Clinic             json.RawMessage `json:"clinic"`
	VideoConsult       json.RawMessage `json:"video_consult"`
	InClinic           json.RawMessage `json:"in_clinic"`
}

type RawClinic struct {
	Name    json.RawMessage `json:"name"`
	Address json.RawMessage `json:"address"`
}

type RawAddress struct {
	Locality json.RawMessage `json:"locality"`
	City     json.RawMessage `json:"city"`
}

// Response DTOs

type ConsultationModesResponse struct {
	VideoConsult bool `json:"video_consult"`
	InClinic     bool `json:"in_clinic"`
}

type DoctorResponse struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	Image             string                    `json:"image,omitempty"`
	Specialties       []string                  `json:"specialties"`
	ExperienceYears   int                       `json:"experience_years"`
	Fee               decimal.Decimal           `json:"fee"`
	ConsultationModes ConsultationModesResponse `json:"consultation_modes"`
	Languages         []string                  `json:"languages"`
	Location          string                    `json:"location"`
	ClinicName        string                    `json:"clinic_name,omitempty"`
}

type FilterStateResponse struct {
	Search           string   `json:"search"`
	ConsultationType string   `json:"consultation_type"`
	Specialties      []string `json:"specialties"`
	SortBy           string   `json:"sort_by"`
	SortLabel        string   `json:"sort_label,omitempty"`
}

// AppliedFilterResponse describes one active filter and the query string
// that results from removing it.
type AppliedFilterResponse struct {
	Kind        string `json:"kind"`
	Value       string `json:"value"`
	Label       string `json:"label"`
	RemoveQuery string `json:"remove_query"`
}

type DoctorSearchResponse struct {
	Doctors        []DoctorResponse        `json:"doctors"`
	Total          int                     `json:"total"`
	Query          string                  `json:"query"`
	Filters        FilterStateResponse     `json:"filters"`
	AppliedFilters []AppliedFilterResponse `json:"applied_filters"`
	Suggestions    []DoctorResponse        `json:"suggestions"`
	Specialties    []string                `json:"specialties"`
}

type SuggestionListResponse struct {
	Suggestions []DoctorResponse `json:"suggestions"`
	Total       int              `json:"total"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}
