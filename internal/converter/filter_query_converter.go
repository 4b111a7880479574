package converter

import (
	"net/url"
	"strings"

	"doctor-directory/internal/domain/entity"
)

// Query keys of the shareable filter encoding.
const (
	QueryKeySearch           = "search"
	QueryKeyConsultationType = "consultationType"
	QueryKeySpecialties      = "specialties"
	QueryKeySortBy           = "sortBy"
)

// EncodeFilterQuery renders the canonical query string for filters, without a
// leading "?". Keys appear in a fixed order and only when non-empty.
func EncodeFilterQuery(filters entity.FilterState) string {
	c := filters.Canonical()
	pairs := make([]string, 0, 4)
	add := func(key, value string) {
		if value != "" {
			pairs = append(pairs, url.QueryEscape(key)+"="+url.QueryEscape(value))
		}
	}

	add(QueryKeySearch, c.Search)
	add(QueryKeyConsultationType, string(c.ConsultationType))
	add(QueryKeySpecialties, strings.Join(c.Specialties, ","))
	add(QueryKeySortBy, string(c.SortBy))

	return strings.Join(pairs, "&")
}

// DecodeFilterQuery reads filters from a raw query string (with or without
// the leading "?"). It never fails: malformed pairs are skipped, unknown keys
// are ignored and unrecognized values fall back to their defaults.
func DecodeFilterQuery(rawQuery string) entity.FilterState {
	// ParseQuery keeps every pair it could decode alongside the first error.
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))

	filters := entity.FilterState{
		Search:           values.Get(QueryKeySearch),
		ConsultationType: entity.ConsultationType(values.Get(QueryKeyConsultationType)),
		SortBy:           entity.SortOption(values.Get(QueryKeySortBy)),
	}
	if specialties := values.Get(QueryKeySpecialties); specialties != "" {
		filters.Specialties = strings.Split(specialties, ",")
	}

	return filters.Canonical()
}

// BuildLocation joins a path and the encoded filters into an address.
func BuildLocation(path string, filters entity.FilterState) string {
	if query := EncodeFilterQuery(filters); query != "" {
		return path + "?" + query
	}
	return path
}

// SplitLocation separates an address into its path and raw query. Fragments
// are dropped.
func SplitLocation(location string) (string, string) {
	location, _, _ = strings.Cut(location, "#")
	path, query, _ := strings.Cut(location, "?")
	return path, query
}
