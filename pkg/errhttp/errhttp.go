// Package errhttp maps domain sentinel errors to HTTP responses.
// Add a row to the mappings table for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/pkg/logger"
	inventorydomain "github.com/ghuser/inventory/services/inventory/domain"
)

// Public messages for the inventory sentinels. They are part of the API contract.
const (
	MsgInvalidTitle         = "Title must be a non-empty string and less than 30 characters!"
	MsgInvalidLocationID    = "Invalid location ID!"
	MsgInvalidCoordinates   = "Invalid coordinates"
	MsgDuplicateCoordinates = "Location with these coordinates already exists!"
	MsgItemNotFound         = "Item not found!"
	MsgItemNotUpdated       = "Item not found or no changes made!"
	MsgLocationNotFound     = "Location not found!"
	MsgLocationInUse        = "Location is still referenced by items!"
)

type mapping struct {
	err     error
	status  int
	message string
}

var mappings = []mapping{
	{inventorydomain.ErrInvalidTitle, http.StatusBadRequest, MsgInvalidTitle},
	{inventorydomain.ErrInvalidLocationID, http.StatusBadRequest, MsgInvalidLocationID},
	{inventorydomain.ErrInvalidCoordinates, http.StatusBadRequest, MsgInvalidCoordinates},
	{inventorydomain.ErrDuplicateCoordinates, http.StatusBadRequest, MsgDuplicateCoordinates},
	{inventorydomain.ErrItemNotFound, http.StatusNotFound, MsgItemNotFound},
	{inventorydomain.ErrItemNotUpdated, http.StatusNotFound, MsgItemNotUpdated},
	{inventorydomain.ErrLocationNotFound, http.StatusNotFound, MsgLocationNotFound},
	{inventorydomain.ErrLocationInUse, http.StatusConflict, MsgLocationInUse},
}

// WriteError maps err to a status and its fixed public message and writes
// {"message": ...}. Uses errors.Is() so wrapped sentinel errors are matched.
//
// Unrecognized errors are logged with the request context and answered with
// 500 and fallback. Their text never reaches the client.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error, fallback string) {
	status, msg := Resolve(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), fallback, "error", err, "path", r.URL.Path)
		msg = fallback
	}
	httpx.Message(w, status, msg)
}

// Resolve returns the status and public message for err. Unknown errors
// resolve to 500 with an empty message.
func Resolve(err error) (int, string) {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, ""
}
