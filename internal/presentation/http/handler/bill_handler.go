package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shreya-jain12/JainTriad/internal/application/service"
	"github.com/shreya-jain12/JainTriad/internal/domain/enum"
	"github.com/shreya-jain12/JainTriad/internal/presentation/http/dto/request"
	"github.com/shreya-jain12/JainTriad/internal/presentation/http/dto/response"
)

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// List handles listing all bills
func (h *BillHandler) List(c *gin.Context) {
	bills, err := h.billService.ListBills(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills retrieved successfully", bills)
}

// Create handles generating a bill
func (h *BillHandler) Create(c *gin.Context) {
	var req request.GenerateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	selections := make([]service.SelectionInput, 0, len(req.Items))
	for _, item := range req.Items {
		selections = append(selections, service.SelectionInput{
			Label: item.Label,
			Qty:   item.Qty,
		})
	}

	bill, err := h.billService.GenerateBill(c.Request.Context(), &service.GenerateBillInput{
		Customer:   req.Customer,
		Selections: selections,
		Paid:       enum.PaidStatus(req.Paid),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill generated successfully", gin.H{
		"bill": bill,
		"text": h.billService.Render(bill, langQuery(c)),
	})
}

// Get handles getting a single bill by position
func (h *BillHandler) Get(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		response.BadRequest(c, "Invalid bill index")
		return
	}

	bill, err := h.billService.GetBill(c.Request.Context(), index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Export handles downloading a single bill as plain text
func (h *BillHandler) Export(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		response.BadRequest(c, "Invalid bill index")
		return
	}

	filename, body, err := h.billService.ExportBill(c.Request.Context(), index, langQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	attachment(c, filename, body)
}

// ExportAll handles downloading the full bill collection as JSON
func (h *BillHandler) ExportAll(c *gin.Context) {
	data, err := h.billService.ExportAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="all_bills.json"`)
	c.Data(200, "application/json; charset=utf-8", data)
}
