package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CT-MUSICAL/internal/contract"
	"CT-MUSICAL/internal/models"
)

type PaymentFieldsResponse struct {
	Form       models.PaymentForm `json:"form"`
	Required   []string           `json:"required"`
	PlanFields []string           `json:"plan_fields"`
	Hidden     []string           `json:"hidden"`
	Methods    []string           `json:"methods"`
	Cadences   []string           `json:"cadences,omitempty"`
}

// ListPaymentForms returns the payment forms in display order.
func ListPaymentForms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"forms":   models.PaymentForms,
		"methods": contract.PaymentMethods,
	})
}

// GetPaymentFields returns the fields the form shows for one payment form.
func GetPaymentFields(c *gin.Context) {
	raw := c.Param("form")
	if !contract.IsPaymentForm(raw) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown payment form"})
		return
	}
	form := models.PaymentForm(raw)

	resp := PaymentFieldsResponse{
		Form:       form,
		Required:   contract.RequiredFields(form),
		PlanFields: contract.PlanFields(form),
		Hidden:     contract.HiddenFields(form),
		Methods:    contract.PaymentMethods,
	}
	if form == models.PaymentInstallments {
		resp.Cadences = contract.Cadences
	}

	c.JSON(http.StatusOK, resp)
}
