package models

// Item is a stored thing that sits at exactly one Location.
type Item struct {
	ID         int64  `db:"id"`
	Title      string `db:"title"`
	LocationID int64  `db:"location_id"`
}

// NewItem constructs an Item that has not been persisted yet. ID is assigned by the store.
func NewItem(title string, locationID int64) *Item {
	return &Item{Title: title, LocationID: locationID}
}
