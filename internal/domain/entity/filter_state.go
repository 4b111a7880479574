package entity

import "slices"

type ConsultationType string

const (
	ConsultationAny    ConsultationType = ""
	ConsultationVideo  ConsultationType = "Video Consult"
	ConsultationClinic ConsultationType = "In Clinic"
)

// Valid reports whether c is one of the recognized consultation types.
func (c ConsultationType) Valid() bool {
	switch c {
	case ConsultationAny, ConsultationVideo, ConsultationClinic:
		return true
	}
	return false
}

type SortOption string

const (
	SortNone       SortOption = ""
	SortFees       SortOption = "fees"
	SortExperience SortOption = "experience"
)

func (s SortOption) Valid() bool {
	switch s {
	case SortNone, SortFees, SortExperience:
		return true
	}
	return false
}

// Label is the human-readable description shown for an active sort.
func (s SortOption) Label() string {
	switch s {
	case SortFees:
		return "Fees (Low to High)"
	case SortExperience:
		return "Experience (High to Low)"
	}
	return ""
}

// FilterState is the complete set of user-chosen search, filter and sort
// parameters. It round-trips through the query string encoding.
type FilterState struct {
	Search           string
	ConsultationType ConsultationType
	Specialties      []string
	SortBy           SortOption
}

// Canonical returns a copy with unrecognized enum values cleared and the
// specialty list reduced to unique, non-empty entries in first-seen order.
func (f FilterState) Canonical() FilterState {
	out := FilterState{
		Search:           f.Search,
		ConsultationType: f.ConsultationType,
		SortBy:           f.SortBy,
		Specialties:      []string{},
	}
	if !out.ConsultationType.Valid() {
		out.ConsultationType = ConsultationAny
	}
	if !out.SortBy.Valid() {
		out.SortBy = SortNone
	}
	for _, s := range f.Specialties {
		if s == "" || slices.Contains(out.Specialties, s) {
			continue
		}
		out.Specialties = append(out.Specialties, s)
	}
	return out
}

// Equal compares two states after canonicalization.
func (f FilterState) Equal(other FilterState) bool {
	a, b := f.Canonical(), other.Canonical()
	return a.Search == b.Search &&
		a.ConsultationType == b.ConsultationType &&
		a.SortBy == b.SortBy &&
		slices.Equal(a.Specialties, b.Specialties)
}

func (f FilterState) HasActiveFilters() bool {
	c := f.Canonical()
	return c.Search != "" || c.ConsultationType != ConsultationAny || len(c.Specialties) > 0 || c.SortBy != SortNone
}

// Merge applies a patch shallowly: each field present in the patch replaces
// the current value wholesale, specialty lists included.
func (f FilterState) Merge(patch FilterPatch) FilterState {
	out := f
	out.Specialties = slices.Clone(f.Specialties)
	if patch.Search != nil {
		out.Search = *patch.Search
	}
	if patch.ConsultationType != nil {
		out.ConsultationType = *patch.ConsultationType
	}
	if patch.Specialties != nil {
		out.Specialties = slices.Clone(*patch.Specialties)
	}
	if patch.SortBy != nil {
		out.SortBy = *patch.SortBy
	}
	return out
}

// ToggleConsultation selects c, or clears the constraint when c is already selected.
func (f FilterState) ToggleConsultation(c ConsultationType) FilterPatch {
	if f.ConsultationType == c {
		c = ConsultationAny
	}
	return FilterPatch{ConsultationType: &c}
}

// ToggleSort selects s, or clears the sort when s is already selected.
func (f FilterState) ToggleSort(s SortOption) FilterPatch {
	if f.SortBy == s {
		s = SortNone
	}
	return FilterPatch{SortBy: &s}
}

// ToggleSpecialty adds the specialty, or removes it when already selected.
func (f FilterState) ToggleSpecialty(specialty string) FilterPatch {
	if slices.Contains(f.Specialties, specialty) {
		return f.RemoveSpecialty(specialty)
	}
	next := append(slices.Clone(f.Specialties), specialty)
	return FilterPatch{Specialties: &next}
}

func (f FilterState) RemoveSpecialty(specialty string) FilterPatch {
	next := make([]string, 0, len(f.Specialties))
	for _, s := range f.Specialties {
		if s != specialty {
			next = append(next, s)
		}
	}
	return FilterPatch{Specialties: &next}
}

// FilterPatch is a partial FilterState. Nil fields are left untouched by Merge.
type FilterPatch struct {
	Search           *string
	ConsultationType *ConsultationType
	Specialties      *[]string
	SortBy           *SortOption
}

func (p FilterPatch) Empty() bool {
	return p.Search == nil && p.ConsultationType == nil && p.Specialties == nil && p.SortBy == nil
}
