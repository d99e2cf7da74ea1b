package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lucaseduardo5855/ABarateira/internal/store"
)

type FornecedorHTTPHandler struct {
	fornecedores *store.FornecedorStore
}

func NewFornecedorHTTPHandler(fornecedores *store.FornecedorStore) *FornecedorHTTPHandler {
	return &FornecedorHTTPHandler{fornecedores: fornecedores}
}

func (h *FornecedorHTTPHandler) List(c *gin.Context) {
	fornecedores, err := h.fornecedores.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list fornecedores: "+err.Error())
		return
	}
	respondSuccess(c, fornecedores)
}

func (h *FornecedorHTTPHandler) Create(c *gin.Context) {
	var input store.FornecedorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(input.Nome) == "" || strings.TrimSpace(input.CNPJ) == "" {
		respondError(c, http.StatusBadRequest, "nome e cnpj são obrigatórios")
		return
	}

	fornecedor, err := h.fornecedores.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": fornecedor})
}

func (h *FornecedorHTTPHandler) Update(c *gin.Context) {
	var updates store.FornecedorUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	fornecedor, err := h.fornecedores.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(c, fornecedor)
}

func (h *FornecedorHTTPHandler) Delete(c *gin.Context) {
	if err := h.fornecedores.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(c, nil)
}
