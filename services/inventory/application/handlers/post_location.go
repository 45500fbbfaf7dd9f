package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/pkg/logger"
	pkgvalidator "github.com/ghuser/inventory/pkg/validator"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// PostLocationHandler handles POST /location requests.
type PostLocationHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostLocationHandler returns a PostLocationHandler backed by the given services.
func NewPostLocationHandler(svc *appsvcs.Services, log logger.Logger) *PostLocationHandler {
	return &PostLocationHandler{svc: svc, log: log}
}

// Execute creates a location on a free coordinate pair and echoes it back.
//
//	@Summary		Create location
//	@Description	x_cor and y_cor must be integers (zero allowed) not used by another location.
//	@Tags			locations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LocationRequest	true	"Location to create"
//	@Success		201		{object}	LocationResponse
//	@Failure		400		{object}	httpx.MessageResponse
//	@Failure		500		{object}	httpx.MessageResponse
//	@Router			/location [post]
func (h *PostLocationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.DecodeRequest[LocationRequest](w, r)
	if !ok {
		return
	}

	location, err := h.svc.Location.Create(r.Context(), req.input())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err, msgCreateLocationFailed)
		return
	}

	httpx.JSON(w, http.StatusCreated, toLocationResponse(location))
}
