package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lucaseduardo5855/ABarateira/internal/store"
)

type MedicamentoHTTPHandler struct {
	medicamentos *store.MedicamentoStore
}

func NewMedicamentoHTTPHandler(medicamentos *store.MedicamentoStore) *MedicamentoHTTPHandler {
	return &MedicamentoHTTPHandler{medicamentos: medicamentos}
}

func (h *MedicamentoHTTPHandler) List(c *gin.Context) {
	medicamentos, err := h.medicamentos.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list medicamentos: "+err.Error())
		return
	}
	respondSuccess(c, medicamentos)
}

// Consulta backs the price-lookup screen: ?termo= searches nome and
// principio_ativo, blank returns the whole active catalog.
func (h *MedicamentoHTTPHandler) Consulta(c *gin.Context) {
	medicamentos, err := h.medicamentos.Consulta(c.Request.Context(), c.Query("termo"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to search medicamentos: "+err.Error())
		return
	}
	respondSuccess(c, medicamentos)
}

func (h *MedicamentoHTTPHandler) Create(c *gin.Context) {
	var input store.MedicamentoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Form-level guard: an empty name never reaches the store.
	if strings.TrimSpace(input.Nome) == "" {
		respondError(c, http.StatusBadRequest, "nome do medicamento é obrigatório")
		return
	}

	medicamento, err := h.medicamentos.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": medicamento})
}

func (h *MedicamentoHTTPHandler) Update(c *gin.Context) {
	var updates store.MedicamentoUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	medicamento, err := h.medicamentos.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(c, medicamento)
}

func (h *MedicamentoHTTPHandler) Delete(c *gin.Context) {
	if err := h.medicamentos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	respondSuccess(c, nil)
}
