package handler

import (
	"encoding/json"
	"net/http"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"
)

type NavigationHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewNavigationHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *NavigationHandler {
	return &NavigationHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *NavigationHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req dto.NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.directoryUsecase.Navigate(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update filters")
		return
	}

	response.Success(w, http.StatusOK, "Filters updated successfully", result)
}
