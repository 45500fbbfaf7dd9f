package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/pkg/logger"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// GetLocationsHandler handles GET /location requests.
type GetLocationsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetLocationsHandler returns a GetLocationsHandler backed by the given services.
func NewGetLocationsHandler(svc *appsvcs.Services, log logger.Logger) *GetLocationsHandler {
	return &GetLocationsHandler{svc: svc, log: log}
}

// Execute lists every location.
//
//	@Summary		List locations
//	@Tags			locations
//	@Produce		json
//	@Success		200	{array}		LocationResponse
//	@Failure		500	{object}	httpx.MessageResponse
//	@Router			/location [get]
func (h *GetLocationsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	locations, err := h.svc.Location.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err, msgGetLocationsFailed)
		return
	}

	resp := make([]LocationResponse, len(locations))
	for i, l := range locations {
		resp[i] = toLocationResponse(l)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
