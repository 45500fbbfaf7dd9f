package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrInvalidTitle indicates a title that is blank or longer than 30 characters.
	ErrInvalidTitle = errors.New("invalid title")

	// ErrInvalidLocationID indicates a location_id that is missing, malformed,
	// or does not reference an existing location.
	ErrInvalidLocationID = errors.New("invalid location id")

	// ErrInvalidCoordinates indicates a missing or non-integer x_cor or y_cor.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrDuplicateCoordinates indicates another location already occupies the pair.
	ErrDuplicateCoordinates = errors.New("duplicate coordinates")

	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemNotUpdated indicates an update that matched no item row.
	ErrItemNotUpdated = errors.New("item not found or unchanged")

	// ErrLocationNotFound indicates the requested location does not exist.
	ErrLocationNotFound = errors.New("location not found")

	// ErrLocationInUse indicates a delete blocked by items still referencing the location.
	ErrLocationInUse = errors.New("location in use")
)
