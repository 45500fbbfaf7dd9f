// Package services contains stateless domain services for the inventory bounded context.
// Domain services enforce business rules that operate purely on domain types.
package services

import (
	"github.com/ghuser/inventory/services/inventory/domain"
	"github.com/ghuser/inventory/services/inventory/domain/models"
)

// CheckCoordinatesAvailable decides whether candidate may take its
// coordinates. existing is the location found at that pair (nil if none).
// candidate.ID is zero for a location that does not exist yet.
//
// The pair is free when nobody holds it, or when the holder is the location
// being written.
func CheckCoordinatesAvailable(existing, candidate *models.Location) error {
	if !candidate.SameSpot(existing) {
		return nil
	}
	if candidate.ID > 0 && existing.ID == candidate.ID {
		return nil
	}
	return domain.ErrDuplicateCoordinates
}
