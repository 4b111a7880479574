package converter

import (
	"slices"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
)

func FilterStateToResponse(filters entity.FilterState) dto.FilterStateResponse {
	c := filters.Canonical()
	return dto.FilterStateResponse{
		Search:           c.Search,
		ConsultationType: string(c.ConsultationType),
		Specialties:      c.Specialties,
		SortBy:           string(c.SortBy),
		SortLabel:        c.SortBy.Label(),
	}
}

// NavigateRequestToPatch converts the request's present fields into a patch.
func NavigateRequestToPatch(req *dto.NavigateRequest) entity.FilterPatch {
	var patch entity.FilterPatch
	if req == nil {
		return patch
	}
	if req.Search != nil {
		search := *req.Search
		patch.Search = &search
	}
	if req.ConsultationType != nil {
		ct := entity.ConsultationType(*req.ConsultationType)
		patch.ConsultationType = &ct
	}
	if req.Specialties != nil {
		specialties := slices.Clone(*req.Specialties)
		if specialties == nil {
			specialties = []string{}
		}
		patch.Specialties = &specialties
	}
	if req.SortBy != nil {
		sortBy := entity.SortOption(*req.SortBy)
		patch.SortBy = &sortBy
	}
	return patch
}

// AppliedFiltersToResponses lists the active filters in display order, each
// with the query string that results from removing just that filter.
func AppliedFiltersToResponses(filters entity.FilterState) []dto.AppliedFilterResponse {
	c := filters.Canonical()
	applied := []dto.AppliedFilterResponse{}
	without := func(patch entity.FilterPatch) string {
		return EncodeFilterQuery(c.Merge(patch))
	}

	if c.Search != "" {
		empty := ""
		applied = append(applied, dto.AppliedFilterResponse{
			Kind:        QueryKeySearch,
			Value:       c.Search,
			Label:       "Search: " + c.Search,
			RemoveQuery: without(entity.FilterPatch{Search: &empty}),
		})
	}
	if c.ConsultationType != entity.ConsultationAny {
		applied = append(applied, dto.AppliedFilterResponse{
			Kind:        QueryKeyConsultationType,
			Value:       string(c.ConsultationType),
			Label:       string(c.ConsultationType),
			RemoveQuery: without(c.ToggleConsultation(c.ConsultationType)),
		})
	}
	for _, specialty := range c.Specialties {
		applied = append(applied, dto.AppliedFilterResponse{
			Kind:        QueryKeySpecialties,
			Value:       specialty,
			Label:       specialty,
			RemoveQuery: without(c.RemoveSpecialty(specialty)),
		})
	}
	if c.SortBy != entity.SortNone {
		applied = append(applied, dto.AppliedFilterResponse{
			Kind:        QueryKeySortBy,
			Value:       string(c.SortBy),
			Label:       "Sorted by: " + c.SortBy.Label(),
			RemoveQuery: without(c.ToggleSort(c.SortBy)),
		})
	}
	return applied
}
