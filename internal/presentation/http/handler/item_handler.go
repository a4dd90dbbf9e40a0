package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shreya-jain12/JainTriad/internal/application/service"
	"github.com/shreya-jain12/JainTriad/internal/presentation/http/dto/response"
)

// ItemHandler handles catalog-related HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List handles listing items, optionally filtered by ?search=
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved successfully", items)
}

// Create handles creating an item
func (h *ItemHandler) Create(c *gin.Context) {
	var req struct {
		Name  string  `json:"name" binding:"required"`
		Type  string  `json:"type" binding:"required"`
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		Name:  req.Name,
		Type:  req.Type,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// UpdatePrice handles updating an item's price in place
func (h *ItemHandler) UpdatePrice(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item index")
		return
	}

	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.UpdatePrice(c.Request.Context(), index, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price updated successfully", item)
}

// Delete handles deleting an item
func (h *ItemHandler) Delete(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item index")
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), index); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
