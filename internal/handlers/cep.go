package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"CT-MUSICAL/internal/models"
	"CT-MUSICAL/internal/services"
)

type CEPHandler struct {
	cep *services.CEPService
}

func NewCEPHandler(cep *services.CEPService) *CEPHandler {
	return &CEPHandler{cep: cep}
}

type CEPResponse struct {
	Address *services.CEPAddress `json:"address"`
	Values  models.FormValues    `json:"values,omitempty"`
}

// Lookup resolves a CEP. With ?grupo=contratante|contratado|evento_local the
// response also carries the form values to merge into that address group.
func (h *CEPHandler) Lookup(c *gin.Context) {
	group := c.Query("grupo")
	if group != "" {
		if _, ok := services.AddressGroups[group]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown address group"})
			return
		}
	}

	addr, err := h.cep.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCEP):
			c.JSON(http.StatusBadRequest, gin.H{"error": "CEP inválido. Use 8 dígitos."})
		case errors.Is(err, services.ErrCEPNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "CEP não encontrado."})
		default:
			logError(c, "CEP lookup failed", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Falha ao consultar CEP."})
		}
		return
	}

	resp := CEPResponse{Address: addr}
	if group != "" {
		resp.Values, _ = addr.FormValues(group)
	}
	c.JSON(http.StatusOK, resp)
}
