package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/pkg/logger"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// DeleteLocationHandler handles DELETE /location/{id} requests.
type DeleteLocationHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteLocationHandler returns a DeleteLocationHandler backed by the given services.
func NewDeleteLocationHandler(svc *appsvcs.Services, log logger.Logger) *DeleteLocationHandler {
	return &DeleteLocationHandler{svc: svc, log: log}
}

// Execute deletes a location that no item references.
//
//	@Summary		Delete location
//	@Tags			locations
//	@Produce		json
//	@Param			id	path		int	true	"Location ID"
//	@Success		200	{object}	httpx.MessageResponse
//	@Failure		404	{object}	httpx.MessageResponse
//	@Failure		409	{object}	httpx.MessageResponse
//	@Failure		500	{object}	httpx.MessageResponse
//	@Router			/location/{id} [delete]
func (h *DeleteLocationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Location.Delete(r.Context(), pathID(r)); err != nil {
		errhttp.WriteError(w, r, h.log, err, msgDeleteLocationFailed)
		return
	}
	httpx.Message(w, http.StatusOK, msgLocationDeleted)
}
