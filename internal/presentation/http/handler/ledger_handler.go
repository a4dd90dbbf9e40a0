package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shreya-jain12/JainTriad/internal/application/service"
	"github.com/shreya-jain12/JainTriad/internal/presentation/http/dto/response"
)

// LedgerHandler handles khaata (per-customer ledger) HTTP requests
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// Get handles retrieving a customer's ledger by exact name
func (h *LedgerHandler) Get(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.BadRequest(c, "Customer name is required")
		return
	}

	ledger, err := h.ledgerService.LedgerFor(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ledger retrieved successfully", ledger)
}
