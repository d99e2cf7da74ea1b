package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucaseduardo5855/ABarateira/internal/store"
)

type EstoqueHTTPHandler struct {
	estoque *store.EstoqueStore
}

func NewEstoqueHTTPHandler(estoque *store.EstoqueStore) *EstoqueHTTPHandler {
	return &EstoqueHTTPHandler{estoque: estoque}
}

func (h *EstoqueHTTPHandler) List(c *gin.Context) {
	if filialID := c.Query("filial_id"); filialID != "" {
		estoques, err := h.estoque.ListByFilial(c.Request.Context(), filialID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to list estoque: "+err.Error())
			return
		}
		respondSuccess(c, estoques)
		return
	}

	estoques, err := h.estoque.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list estoque: "+err.Error())
		return
	}
	respondSuccess(c, estoques)
}
