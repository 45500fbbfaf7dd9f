package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/pkg/logger"
	pkgvalidator "github.com/ghuser/inventory/pkg/validator"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// PostItemHandler handles POST /item requests.
type PostItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, log logger.Logger) *PostItemHandler {
	return &PostItemHandler{svc: svc, log: log}
}

// Execute creates a new item at an existing location.
//
//	@Summary		Create item
//	@Description	Title must be non-blank and at most 30 characters. location_id must name an existing location.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ItemRequest	true	"Item to create"
//	@Success		201		{object}	CreateItemResponse
//	@Failure		400		{object}	httpx.MessageResponse
//	@Failure		500		{object}	httpx.MessageResponse
//	@Router			/item [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.DecodeRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	id, err := h.svc.Item.Create(r.Context(), req.input())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err, msgCreateItemFailed)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreateItemResponse{Message: msgItemCreated, ItemID: id})
}
