package handlers

import "github.com/ghuser/inventory/services/inventory/domain/models"

// ItemResponse is the JSON shape of an Item.
type ItemResponse struct {
	ID         int64  `json:"id"          example:"1"`
	Title      string `json:"title"       example:"Hammer"`
	LocationID int64  `json:"location_id" example:"1"`
} // @name ItemResponse

// CreateItemResponse is returned on successful item creation.
type CreateItemResponse struct {
	Message string `json:"message" example:"Item created successfully!"`
	ItemID  int64  `json:"itemId"  example:"1"`
} // @name CreateItemResponse

// LocationResponse is the JSON shape of a Location.
type LocationResponse struct {
	ID    int64  `json:"id"    example:"1"`
	Title string `json:"title" example:"Shelf A"`
	XCor  int64  `json:"x_cor" example:"12"`
	YCor  int64  `json:"y_cor" example:"-4"`
} // @name LocationResponse

func toItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{ID: i.ID, Title: i.Title, LocationID: i.LocationID}
}

func toLocationResponse(l *models.Location) LocationResponse {
	return LocationResponse{ID: l.ID, Title: l.Title, XCor: l.X, YCor: l.Y}
}
