package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/pkg/logger"
	pkgvalidator "github.com/ghuser/inventory/pkg/validator"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// PutLocationHandler handles PUT /location/{id} requests.
type PutLocationHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPutLocationHandler returns a PutLocationHandler backed by the given services.
func NewPutLocationHandler(svc *appsvcs.Services, log logger.Logger) *PutLocationHandler {
	return &PutLocationHandler{svc: svc, log: log}
}

// Execute replaces the title and coordinates of a location.
//
//	@Summary		Update location
//	@Tags			locations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Location ID"
//	@Param			request	body		LocationRequest	true	"New location values"
//	@Success		200		{object}	httpx.MessageResponse
//	@Failure		400		{object}	httpx.MessageResponse
//	@Failure		404		{object}	httpx.MessageResponse
//	@Failure		500		{object}	httpx.MessageResponse
//	@Router			/location/{id} [put]
func (h *PutLocationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.DecodeRequest[LocationRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Location.Update(r.Context(), pathID(r), req.input()); err != nil {
		errhttp.WriteError(w, r, h.log, err, msgUpdateLocationFailed)
		return
	}

	httpx.Message(w, http.StatusOK, msgLocationUpdated)
}
