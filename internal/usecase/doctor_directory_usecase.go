package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/internal/infrastructure/history"
	"doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// DoctorsUnavailableMessage is the user-facing text for a failed fetch.
const DoctorsUnavailableMessage = "Failed to fetch doctors data. Please try again later."

// DefaultLocation is used when a navigation request carries no location.
const DefaultLocation = "/"

var (
	ErrDoctorsUnavailable = errors.New("failed to fetch doctors data")
	ErrDoctorNotFound     = errors.New("doctor not found")
)

type DoctorDirectoryUsecase interface {
	Load(ctx context.Context) error
	Search(ctx context.Context, filters entity.FilterState) (*dto.DoctorSearchResponse, error)
	Suggest(ctx context.Context, term string) (*dto.SuggestionListResponse, error)
	Specialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
	Navigate(ctx context.Context, req *dto.NavigateRequest) (*dto.NavigateResponse, error)
}

// doctorCatalog is the immutable result of one successful load.
type doctorCatalog struct {
	doctors     []entity.Doctor
	specialties []string
	byID        map[string]int
}

type doctorDirectoryUsecase struct {
	log          *logrus.Logger
	sourceRepo   repository.DoctorSourceRepository
	snapshotRepo repository.DoctorSnapshotRepository

	loadGroup singleflight.Group
	mu        sync.RWMutex
	catalog   *doctorCatalog
}

// NewDoctorDirectoryUsecase wires the directory. snapshotRepo may be nil when
// no cache is configured.
func NewDoctorDirectoryUsecase(
	log *logrus.Logger,
	sourceRepo repository.DoctorSourceRepository,
	snapshotRepo repository.DoctorSnapshotRepository,
) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:          log,
		sourceRepo:   sourceRepo,
		snapshotRepo: snapshotRepo,
	}
}

// Load fetches and normalizes the doctor list once. Concurrent callers share
// a single fetch. A failure leaves the directory empty; a later call starts a
// fresh fetch.
func (u *doctorDirectoryUsecase) Load(ctx context.Context) error {
	_, err := u.loadCatalog(ctx)
	return err
}

func (u *doctorDirectoryUsecase) Search(ctx context.Context, filters entity.FilterState) (*dto.DoctorSearchResponse, error) {
	catalog, err := u.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	canonical := filters.Canonical()
	doctors := service.ApplyFilters(catalog.doctors, canonical)
	suggestions := service.AutocompleteSuggestions(catalog.doctors, canonical.Search)

	return &dto.DoctorSearchResponse{
		Doctors:        converter.DoctorsToResponses(doctors),
		Total:          len(doctors),
		Query:          converter.EncodeFilterQuery(canonical),
		Filters:        converter.FilterStateToResponse(canonical),
		AppliedFilters: converter.AppliedFiltersToResponses(canonical),
		Suggestions:    converter.DoctorsToResponses(suggestions),
		Specialties:    catalog.specialties,
	}, nil
}

func (u *doctorDirectoryUsecase) Suggest(ctx context.Context, term string) (*dto.SuggestionListResponse, error) {
	catalog, err := u.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := converter.DoctorsToResponses(service.AutocompleteSuggestions(catalog.doctors, term))
	return &dto.SuggestionListResponse{
		Suggestions: suggestions,
		Total:       len(suggestions),
	}, nil
}

func (u *doctorDirectoryUsecase) Specialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	catalog, err := u.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: catalog.specialties,
		Total:       len(catalog.specialties),
	}, nil
}

func (u *doctorDirectoryUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	catalog, err := u.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	i, ok := catalog.byID[doctorID]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(&catalog.doctors[i]), nil
}

// Navigate replays one filter update against the caller's current location
// and reports the location the address bar should show afterwards.
func (u *doctorDirectoryUsecase) Navigate(ctx context.Context, req *dto.NavigateRequest) (*dto.NavigateResponse, error) {
	location := req.Location
	if location == "" {
		location = DefaultLocation
	}

	h := history.NewMemoryHistory(location)
	nav := service.NewNavigationService(h, u.log)
	defer nav.Close()

	t := nav.Update(converter.NavigateRequestToPatch(req))

	return &dto.NavigateResponse{
		Location: t.Location,
		Query:    converter.EncodeFilterQuery(t.Current),
		Filters:  converter.FilterStateToResponse(t.Current),
		Changed:  t.Written,
	}, nil
}

func (u *doctorDirectoryUsecase) loadCatalog(ctx context.Context) (*doctorCatalog, error) {
	u.mu.RLock()
	catalog := u.catalog
	u.mu.RUnlock()
	if catalog != nil {
		return catalog, nil
	}

	v, err, _ := u.loadGroup.Do("doctors", func() (interface{}, error) {
		// Every waiter shares this fetch; detach it from the caller that
		// started it. The source client timeout still bounds it.
		ctx := context.WithoutCancel(ctx)

		u.mu.RLock()
		loaded := u.catalog
		u.mu.RUnlock()
		if loaded != nil {
			return loaded, nil
		}

		payload, err := u.readPayload(ctx)
		if err != nil {
			return nil, err
		}

		doctors := converter.NormalizeDoctors(converter.DecodeRawDoctors(payload))
		loaded = newDoctorCatalog(doctors)

		u.mu.Lock()
		u.catalog = loaded
		u.mu.Unlock()

		u.log.Infof("Loaded %d doctors with %d specialties", len(loaded.doctors), len(loaded.specialties))
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*doctorCatalog), nil
}

// readPayload prefers the snapshot cache and falls back to the source.
// Cache failures are logged and otherwise ignored.
func (u *doctorDirectoryUsecase) readPayload(ctx context.Context) ([]byte, error) {
	if u.snapshotRepo != nil {
		payload, err := u.snapshotRepo.Load(ctx)
		if err != nil {
			u.log.Warnf("Failed to load doctor snapshot: %+v", err)
		} else if payload != nil {
			u.log.Debug("Doctor list served from snapshot")
			return payload, nil
		}
	}

	payload, err := u.sourceRepo.FetchDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch doctors: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrDoctorsUnavailable, err)
	}

	if u.snapshotRepo != nil {
		if err := u.snapshotRepo.Save(ctx, payload); err != nil {
			u.log.Warnf("Failed to save doctor snapshot: %+v", err)
		}
	}
	return payload, nil
}

func newDoctorCatalog(doctors []entity.Doctor) *doctorCatalog {
	byID := make(map[string]int, len(doctors))
	for i, d := range doctors {
		if _, dup := byID[d.ID]; !dup {
			byID[d.ID] = i
		}
	}
	return &doctorCatalog{
		doctors:     doctors,
		specialties: service.AllSpecialties(doctors),
		byID:        byID,
	}
}
