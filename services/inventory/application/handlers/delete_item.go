package handlers

import (
	"net/http"

	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/pkg/logger"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// DeleteItemHandler handles DELETE /item/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, log logger.Logger) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, log: log}
}

// Execute deletes an item.
//
//	@Summary		Delete item
//	@Tags			items
//	@Produce		json
//	@Param			id	path		int	true	"Item ID"
//	@Success		200	{object}	httpx.MessageResponse
//	@Failure		404	{object}	httpx.MessageResponse
//	@Failure		500	{object}	httpx.MessageResponse
//	@Router			/item/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Item.Delete(r.Context(), pathID(r)); err != nil {
		errhttp.WriteError(w, r, h.log, err, msgDeleteItemFailed)
		return
	}
	httpx.Message(w, http.StatusOK, msgItemDeleted)
}
