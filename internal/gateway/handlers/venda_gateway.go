package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucaseduardo5855/ABarateira/internal/store"
)

type VendaHTTPHandler struct {
	vendas *store.VendaStore
}

func NewVendaHTTPHandler(vendas *store.VendaStore) *VendaHTTPHandler {
	return &VendaHTTPHandler{vendas: vendas}
}

func (h *VendaHTTPHandler) List(c *gin.Context) {
	vendas, err := h.vendas.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list vendas: "+err.Error())
		return
	}
	respondSuccess(c, vendas)
}

// Search filters the listed sales by ?cliente=, ?produto= and ?data=
// (calendar day) without an extra database round-trip.
func (h *VendaHTTPHandler) Search(c *gin.Context) {
	var filter store.VendaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid filter: "+err.Error())
		return
	}

	vendas, err := h.vendas.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to search vendas: "+err.Error())
		return
	}
	respondSuccess(c, vendas)
}

func (h *VendaHTTPHandler) Create(c *gin.Context) {
	var input store.VendaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// The sale number is assigned here, form-side, when the client leaves
	// it blank.
	if strings.TrimSpace(input.NumeroVenda) == "" {
		input.NumeroVenda = fmt.Sprintf("V%d", time.Now().UnixMilli())
	}

	venda, err := h.vendas.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": venda})
}
