// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-lists-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lists-service/internal/ports"
)

// ListHandler handles HTTP requests for todo list CRUD.
type ListHandler struct {
	svc            ports.ListService
	defaultPerPage int
}

// NewListHandler creates a new ListHandler. defaultPerPage applies when a
// request omits per_page.
func NewListHandler(svc ports.ListService, defaultPerPage int) *ListHandler {
	return &ListHandler{svc: svc, defaultPerPage: defaultPerPage}
}

// ListLists handles GET /lists.
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.defaultPerPage)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	lists, err := h.svc.ListLists(r.Context(), page)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponses(lists))
}

// CreateList handles POST /lists.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateList(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(created))
}

// GetList handles GET /lists/{id}.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.svc.GetList(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(list))
}

// UpdateList handles PUT /lists/{id}.
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateList(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(updated))
}

// DeleteList handles DELETE /lists/{id}.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteList(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DeleteResponse{})
}
