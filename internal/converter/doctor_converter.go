package converter

import (
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Image:           doctor.Image,
		Specialties:     nonNil(doctor.Specialties),
		ExperienceYears: doctor.ExperienceYears,
		Fee:             doctor.Fee,
		ConsultationModes: dto.ConsultationModesResponse{
			VideoConsult: doctor.ConsultationModes.VideoConsult,
			InClinic:     doctor.ConsultationModes.InClinic,
		},
		Languages:  nonNil(doctor.Languages),
		Location:   doctor.Location,
		ClinicName: doctor.ClinicName,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
