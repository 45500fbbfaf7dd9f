package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghuser/inventory/pkg/logger"
	pkgvalidator "github.com/ghuser/inventory/pkg/validator"
	inventorydomain "github.com/ghuser/inventory/services/inventory/domain"
	"github.com/ghuser/inventory/services/inventory/domain/models"
	"github.com/ghuser/inventory/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/inventory/services/inventory/domain/services"
)

// LocationInput carries the writable fields of a Location. Coordinates are
// pointers so an absent value is distinguishable from zero.
type LocationInput struct {
	Title string `json:"title" validate:"notblank,max=30"`
	XCor  *int64 `json:"x_cor" validate:"required"`
	YCor  *int64 `json:"y_cor" validate:"required"`
}

// LocationService orchestrates Location reads and writes and enforces
// coordinate uniqueness before each write.
type LocationService struct {
	locations repositories.LocationRepository
	log       logger.Logger
}

// NewLocationService returns a LocationService wired with the given repository.
func NewLocationService(locations repositories.LocationRepository, log logger.Logger) *LocationService {
	return &LocationService{locations: locations, log: log}
}

// List returns every location in store order.
func (s *LocationService) List(ctx context.Context) ([]*models.Location, error) {
	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

// Get returns the location with id, or ErrLocationNotFound.
func (s *LocationService) Get(ctx context.Context, id int64) (*models.Location, error) {
	if id <= 0 {
		return nil, inventorydomain.ErrLocationNotFound
	}
	location, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	return location, nil
}

// Create validates in, checks the coordinates are free and inserts the location.
// The returned Location carries the new ID.
func (s *LocationService) Create(ctx context.Context, in LocationInput) (*models.Location, error) {
	location, err := s.validate(ctx, in, 0)
	if err != nil {
		return nil, err
	}

	id, err := s.locations.Create(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}
	location.ID = id

	s.log.InfoContext(ctx, "location created", "location_id", id, "x_cor", location.X, "y_cor", location.Y)
	return location, nil
}

// Update validates in and overwrites location id. Keeping its own coordinates
// is not a conflict. The body is checked before id. Returns
// ErrLocationNotFound when no row matched.
func (s *LocationService) Update(ctx context.Context, id int64, in LocationInput) error {
	location, err := s.validate(ctx, in, id)
	if err != nil {
		return err
	}
	if id <= 0 {
		return inventorydomain.ErrLocationNotFound
	}

	affected, err := s.locations.Update(ctx, location)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	if affected == 0 {
		return inventorydomain.ErrLocationNotFound
	}

	s.log.InfoContext(ctx, "location updated", "location_id", id)
	return nil
}

// Delete removes location id. Returns ErrLocationInUse while items still
// reference it and ErrLocationNotFound when no row matched.
func (s *LocationService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return inventorydomain.ErrLocationNotFound
	}

	affected, err := s.locations.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if affected == 0 {
		return inventorydomain.ErrLocationNotFound
	}

	s.log.InfoContext(ctx, "location deleted", "location_id", id)
	return nil
}

// validate runs the field rules, then the uniqueness lookup. The returned
// Location carries selfID, and a non-positive selfID never matches the
// current occupant.
func (s *LocationService) validate(ctx context.Context, in LocationInput, selfID int64) (*models.Location, error) {
	if err := validateLocationInput(in); err != nil {
		return nil, err
	}

	location := models.NewLocation(in.Title, *in.XCor, *in.YCor)
	location.ID = selfID

	existing, err := s.locations.GetByCoordinates(ctx, location.Coordinates)
	switch {
	case errors.Is(err, inventorydomain.ErrLocationNotFound):
		existing = nil
	case err != nil:
		return nil, fmt.Errorf("lookup coordinates: %w", err)
	}

	if err := domainsvcs.CheckCoordinatesAvailable(existing, location); err != nil {
		return nil, err
	}
	return location, nil
}

func validateLocationInput(in LocationInput) error {
	err := pkgvalidator.Validate(&in)
	if err == nil {
		return nil
	}
	if pkgvalidator.HasFieldError(err, "title") {
		return fmt.Errorf("%w: %w", inventorydomain.ErrInvalidTitle, err)
	}
	return fmt.Errorf("%w: %w", inventorydomain.ErrInvalidCoordinates, err)
}
