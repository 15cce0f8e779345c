package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lists-service/internal/ports"
)

// ItemHandler handles HTTP requests for the items nested under a list.
type ItemHandler struct {
	svc            ports.ItemService
	defaultPerPage int
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(svc ports.ItemService, defaultPerPage int) *ItemHandler {
	return &ItemHandler{svc: svc, defaultPerPage: defaultPerPage}
}

// ListItems handles GET /lists/{id}/items.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := parsePage(r, h.defaultPerPage)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.ListItems(r.Context(), listID, page)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToItemResponses(items))
}

// CreateItem handles POST /lists/{id}/items.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateItem(r.Context(), listID, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToItemResponse(created))
}

// GetItem handles GET /lists/{id}/items/{itemId}.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	listID, itemID, err := parseListAndItemIDs(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	item, err := h.svc.GetItem(r.Context(), listID, itemID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToItemResponse(item))
}

// UpdateItem handles PUT /lists/{id}/items/{itemId}.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	listID, itemID, err := parseListAndItemIDs(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateItem(r.Context(), listID, itemID, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToItemResponse(updated))
}

// DeleteItem handles DELETE /lists/{id}/items/{itemId}.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	listID, itemID, err := parseListAndItemIDs(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteItem(r.Context(), listID, itemID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DeleteResponse{})
}
