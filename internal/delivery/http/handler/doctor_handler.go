package handler

import (
	"errors"
	"net/http"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
	}
}

// SearchDoctors decodes the filter state from the request's query string.
// Unknown keys and unrecognized values are ignored rather than rejected.
func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	filters := converter.DecodeFilterQuery(r.URL.RawQuery)

	result, err := h.directoryUsecase.Search(r.Context(), filters)
	if err != nil {
		writeDirectoryError(w, err, "Failed to search doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", result)
}

func (h *DoctorHandler) SuggestDoctors(w http.ResponseWriter, r *http.Request) {
	result, err := h.directoryUsecase.Suggest(r.Context(), r.URL.Query().Get(converter.QueryKeySearch))
	if err != nil {
		writeDirectoryError(w, err, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", result)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), vars["id"])
	if err != nil {
		writeDirectoryError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	result, err := h.directoryUsecase.Specialties(r.Context())
	if err != nil {
		writeDirectoryError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", result)
}

func writeDirectoryError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDoctorsUnavailable):
		response.ServiceUnavailable(w, usecase.DoctorsUnavailableMessage)
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
