package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shreya-jain12/JainTriad/internal/application/service"
	"github.com/shreya-jain12/JainTriad/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers, optionally filtered by ?search=
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customers retrieved successfully", customers)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer by position
func (h *CustomerHandler) Get(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		response.BadRequest(c, "Invalid customer index")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Delete handles deleting a customer and every bill in their name
func (h *CustomerHandler) Delete(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		response.BadRequest(c, "Invalid customer index")
		return
	}

	removed, err := h.customerService.DeleteCustomer(c.Request.Context(), index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted successfully", gin.H{"bills_removed": removed})
}

// Export handles downloading a customer's details with their bill history
func (h *CustomerHandler) Export(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		response.BadRequest(c, "Invalid customer index")
		return
	}

	export, err := h.customerService.ExportDetails(c.Request.Context(), index, langQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	attachment(c, export.Filename, export.Body)
}
