package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"natalify-backend/internal/models"
	"natalify-backend/internal/store"
)

// GetDashboard aggregates back-office statistics: catalog size, order
// totals and revenue, per-status counts, and the orders of the last month.
func GetDashboard(products *store.ProductStore, orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := orders.All()

		now := time.Now()
		lastMonth := time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, now.Location())

		totalRevenue := 0
		recentCount := 0
		byStatus := map[models.OrderStatus]int{
			models.OrderPending:   0,
			models.OrderConfirmed: 0,
			models.OrderShipped:   0,
			models.OrderDelivered: 0,
			models.OrderCancelled: 0,
		}

		for _, order := range all {
			totalRevenue += order.TotalAmount
			byStatus[order.Status]++
			if !order.CreatedAt.Before(lastMonth) {
				recentCount++
			}
		}

		recentOrders := all
		if len(recentOrders) > 5 {
			recentOrders = recentOrders[:5]
		}

		c.JSON(http.StatusOK, gin.H{
			"stats": gin.H{
				"totalProducts":     products.Count(),
				"totalOrders":       len(all),
				"totalRevenue":      totalRevenue,
				"recentOrdersCount": recentCount,
			},
			"ordersByStatus": byStatus,
			"recentOrders":   recentOrders,
		})
	}
}
