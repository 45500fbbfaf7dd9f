package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/pkg/logger"
	pkgvalidator "github.com/ghuser/inventory/pkg/validator"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// PutItemHandler handles PUT /item/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services, log logger.Logger) *PutItemHandler {
	return &PutItemHandler{svc: svc, log: log}
}

// Execute replaces the title and location of an item.
//
//	@Summary		Update item
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int			true	"Item ID"
//	@Param			request	body		ItemRequest	true	"New item values"
//	@Success		200		{object}	httpx.MessageResponse
//	@Failure		400		{object}	httpx.MessageResponse
//	@Failure		404		{object}	httpx.MessageResponse
//	@Failure		500		{object}	httpx.MessageResponse
//	@Router			/item/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.DecodeRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Item.Update(r.Context(), pathID(r), req.input()); err != nil {
		errhttp.WriteError(w, r, h.log, err, msgUpdateItemFailed)
		return
	}

	httpx.Message(w, http.StatusOK, msgItemUpdated)
}
