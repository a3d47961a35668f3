package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"natalify-backend/internal/models"
	"natalify-backend/internal/store"
)

type orderStatusUpdateRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// GetAllOrders is the admin order listing: status filter, search on order
// number / customer name / phone, newest first, default page size 10.
func GetAllOrders(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"), 10)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		filtered := orders.List(store.OrderFilter{
			Status: c.Query("status"),
			Search: c.Query("search"),
		})

		items, pagination := paginate(filtered, page, limit)
		c.JSON(http.StatusOK, gin.H{
			"items":      items,
			"pagination": pagination,
		})
	}
}

func UpdateOrderStatus(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderStatusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		order, err := orders.UpdateStatus(c.Param("id"), models.OrderStatus(req.Status), req.Notes)
		if err != nil {
			if errors.Is(err, store.ErrInvalidStatus) {
				respondWithError(c, http.StatusBadRequest, "Invalid status")
				return
			}
			respondWithError(c, http.StatusNotFound, "Order not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order status updated successfully",
			"order":   order,
		})
	}
}
