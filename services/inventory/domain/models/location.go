package models

// Coordinates is the grid position of a Location. The pair is unique across locations.
type Coordinates struct {
	X int64 `db:"x_cor"`
	Y int64 `db:"y_cor"`
}

// Location is a named place on the grid that items can be assigned to.
type Location struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	Coordinates
}

// NewLocation constructs a Location that has not been persisted yet.
func NewLocation(title string, x, y int64) *Location {
	return &Location{Title: title, Coordinates: Coordinates{X: x, Y: y}}
}

// SameSpot reports whether both locations occupy the same coordinate pair.
func (l *Location) SameSpot(other *Location) bool {
	return other != nil && l.Coordinates == other.Coordinates
}
