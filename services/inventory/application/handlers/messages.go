package handlers

// Success and fallback messages. They are part of the API contract.
const (
	msgItemCreated = "Item created successfully!"
	msgItemUpdated = "Item updated successfully!"
	msgItemDeleted = "Item deleted successfully!"

	msgLocationUpdated = "Location updated successfully!"
	msgLocationDeleted = "Location deleted successfully!"

	msgGetItemsFailed   = "Unable to get items!"
	msgGetItemFailed    = "Unable to get item!"
	msgCreateItemFailed = "Unable to create item!"
	msgUpdateItemFailed = "Unable to update item!"
	msgDeleteItemFailed = "Unable to delete item!"

	msgGetLocationsFailed   = "Unable to get locations!"
	msgGetLocationFailed    = "Unable to get location!"
	msgCreateLocationFailed = "Unable to create location!"
	msgUpdateLocationFailed = "Unable to update location!"
	msgDeleteLocationFailed = "Unable to delete location!"
)
