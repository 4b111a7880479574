package dto

// Request DTOs

// NavigateRequest carries the caller's current location and the filter
// fields to change. Absent fields are left as they are; a present
// specialties list replaces the current one.
type NavigateRequest struct {
	Location         string    `json:"location" validate:"omitempty,max=4096"`
	Search           *string   `json:"search" validate:"omitempty,max=256"`
	ConsultationType *string   `json:"consultation_type" validate:"omitempty,max=64"`
	Specialties      *[]string `json:"specialties" validate:"omitempty,max=100,dive,max=128"`
	SortBy           *string   `json:"sort_by" validate:"omitempty,max=64"`
}

// Response DTOs

type NavigateResponse struct {
	Location string              `json:"location"`
	Query    string              `json:"query"`
	Filters  FilterStateResponse `json:"filters"`
	Changed  bool                `json:"changed"`
}
