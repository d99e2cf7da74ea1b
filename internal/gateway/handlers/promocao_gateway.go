package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lucaseduardo5855/ABarateira/internal/store"
)

type PromocaoHTTPHandler struct {
	promocoes *store.PromocaoStore
}

func NewPromocaoHTTPHandler(promocoes *store.PromocaoStore) *PromocaoHTTPHandler {
	return &PromocaoHTTPHandler{promocoes: promocoes}
}

func (h *PromocaoHTTPHandler) List(c *gin.Context) {
	promocoes, err := h.promocoes.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list promocoes: "+err.Error())
		return
	}
	respondSuccess(c, promocoes)
}

func (h *PromocaoHTTPHandler) Create(c *gin.Context) {
	var input store.PromocaoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(input.Titulo) == "" {
		respondError(c, http.StatusBadRequest, "titulo da promoção é obrigatório")
		return
	}

	promocao, err := h.promocoes.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": promocao})
}

func (h *PromocaoHTTPHandler) Update(c *gin.Context) {
	var updates store.PromocaoUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	promocao, err := h.promocoes.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(c, promocao)
}

func (h *PromocaoHTTPHandler) Delete(c *gin.Context) {
	if err := h.promocoes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(c, nil)
}
