package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucaseduardo5855/ABarateira/internal/store"
)

// ProdutoHTTPHandler serves the legacy demo-product screen backed by the
// in-memory store.
type ProdutoHTTPHandler struct {
	produtos *store.ProdutoStore
}

func NewProdutoHTTPHandler(produtos *store.ProdutoStore) *ProdutoHTTPHandler {
	return &ProdutoHTTPHandler{produtos: produtos}
}

func (h *ProdutoHTTPHandler) List(c *gin.Context) {
	respondSuccess(c, h.produtos.List())
}

func (h *ProdutoHTTPHandler) Create(c *gin.Context) {
	var input store.ProdutoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	produto, err := h.produtos.Add(input)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": produto})
}

func (h *ProdutoHTTPHandler) Update(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid produto ID")
		return
	}

	var input store.ProdutoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	produto, err := h.produtos.Update(id, input)
	if err != nil {
		respondError(c, http.StatusNotFound, err.Error())
		return
	}
	respondSuccess(c, produto)
}

func (h *ProdutoHTTPHandler) Delete(c *gin.Context) {
	id, err := parseInt64Param(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid produto ID")
		return
	}

	if err := h.produtos.Delete(id); err != nil {
		respondError(c, http.StatusNotFound, err.Error())
		return
	}
	respondSuccess(c, nil)
}
