package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/pkg/logger"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// GetLocationHandler handles GET /location/{id} requests.
type GetLocationHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetLocationHandler returns a GetLocationHandler backed by the given services.
func NewGetLocationHandler(svc *appsvcs.Services, log logger.Logger) *GetLocationHandler {
	return &GetLocationHandler{svc: svc, log: log}
}

// Execute returns one location.
//
//	@Summary		Get location
//	@Tags			locations
//	@Produce		json
//	@Param			id	path		int	true	"Location ID"
//	@Success		200	{object}	LocationResponse
//	@Failure		404	{object}	httpx.MessageResponse
//	@Failure		500	{object}	httpx.MessageResponse
//	@Router			/location/{id} [get]
func (h *GetLocationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	location, err := h.svc.Location.Get(r.Context(), pathID(r))
	if err != nil {
		errhttp.WriteError(w, r, h.log, err, msgGetLocationFailed)
		return
	}
	httpx.JSON(w, http.StatusOK, toLocationResponse(location))
}
