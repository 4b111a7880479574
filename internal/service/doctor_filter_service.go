package service

import (
	"cmp"
	"slices"
	"strings"

	"doctor-directory/internal/domain/entity"

	"golang.org/x/text/cases"
)

// MaxSuggestions bounds the autocomplete preview.
const MaxSuggestions = 3

// ApplyFilters computes the visible doctor list: search, consultation mode and
// specialty filters in that order, then an optional stable sort. The input
// slice is never modified.
func ApplyFilters(doctors []entity.Doctor, filters entity.FilterState) []entity.Doctor {
	fold := cases.Fold()
	result := slices.Clone(doctors)
	if result == nil {
		result = []entity.Doctor{}
	}

	if filters.Search != "" {
		needle := fold.String(filters.Search)
		result = slices.DeleteFunc(result, func(d entity.Doctor) bool {
			return !strings.Contains(fold.String(d.Name), needle)
		})
	}

	switch filters.ConsultationType {
	case entity.ConsultationVideo:
		result = slices.DeleteFunc(result, func(d entity.Doctor) bool {
			return !d.ConsultationModes.VideoConsult
		})
	case entity.ConsultationClinic:
		result = slices.DeleteFunc(result, func(d entity.Doctor) bool {
			return !d.ConsultationModes.InClinic
		})
	}

	if len(filters.Specialties) > 0 {
		wanted := make(map[string]struct{}, len(filters.Specialties))
		for _, s := range filters.Specialties {
			wanted[fold.String(s)] = struct{}{}
		}
		result = slices.DeleteFunc(result, func(d entity.Doctor) bool {
			for _, s := range d.Specialties {
				if _, ok := wanted[fold.String(s)]; ok {
					return false
				}
			}
			return true
		})
	}

	switch filters.SortBy {
	case entity.SortFees:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return a.Fee.Cmp(b.Fee)
		})
	case entity.SortExperience:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return cmp.Compare(b.ExperienceYears, a.ExperienceYears)
		})
	}

	return result
}

// AutocompleteSuggestions returns up to MaxSuggestions doctors whose name
// contains term, in list order. An empty term yields no suggestions.
func AutocompleteSuggestions(doctors []entity.Doctor, term string) []entity.Doctor {
	suggestions := []entity.Doctor{}
	if term == "" {
		return suggestions
	}

	fold := cases.Fold()
	needle := fold.String(term)
	for _, d := range doctors {
		if strings.Contains(fold.String(d.Name), needle) {
			suggestions = append(suggestions, d)
			if len(suggestions) == MaxSuggestions {
				break
			}
		}
	}
	return suggestions
}

// AllSpecialties lists the distinct, non-blank specialties in doctors,
// sorted lexicographically.
func AllSpecialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	specialties := []string{}
	for _, d := range doctors {
		for _, s := range d.Specialties {
			if strings.TrimSpace(s) == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			specialties = append(specialties, s)
		}
	}
	slices.Sort(specialties)
	return specialties
}
