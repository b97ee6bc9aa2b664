package handler

import (
	"net/http"

	"github.com/osse101/BattleArena_Go/internal/catalog"
	"github.com/osse101/BattleArena_Go/internal/domain"
)

// ItemsResponse lists the catalog
type ItemsResponse struct {
	Count int            `json:"count"`
	Items []*domain.Item `json:"items"`
}

// ItemHandler serves the item catalog
type ItemHandler struct {
	catalog *catalog.Catalog
}

// NewItemHandler creates an ItemHandler reading from c
func NewItemHandler(c *catalog.Catalog) *ItemHandler {
	return &ItemHandler{catalog: c}
}

// HandleListItems returns every item in catalog order
func (h *ItemHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	items := h.catalog.Items()
	respondJSON(w, http.StatusOK, ItemsResponse{Count: len(items), Items: items})
}

// HandleGetItem returns one item looked up by name, ignoring case
func (h *ItemHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}

	item, found := h.catalog.Lookup(name)
	if !found {
		respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
		return
	}
	respondJSON(w, http.StatusOK, item)
}
