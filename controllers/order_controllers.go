package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/naratorn/table-order-app/models"
	"github.com/naratorn/table-order-app/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// findOpenOrder looks up the table's open order (pending or preparing),
// oldest first. Deliberately a two-step lookup-then-create at the call
// sites instead of a filtered upsert, so resolution order is explicit.
func (oc *OrderController) findOpenOrder(tableID uint) (*models.Order, error) {
	var order models.Order
	err := oc.DB.Where("table_id = ? AND status IN ?", tableID, models.OpenOrderStatuses).
		Order("created_at").
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// AddToOrder -> POST /add-to-order/:table_id/:item_id
// Appends a menu item to the table's open order, creating the order first
// when the table has none. A newly created order marks the table occupied.
func (oc *OrderController) AddToOrder(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := oc.DB.First(&table, tableID).Error; err != nil {
		renderNotFound(c, "Table")
		return
	}

	var menuItem models.MenuItem
	if err := oc.DB.First(&menuItem, c.Param("item_id")).Error; err != nil {
		renderNotFound(c, "Menu item")
		return
	}

	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
	if err != nil {
		quantity = 1
	}
	instructions := c.PostForm("special_instructions")

	created := false
	order, err := oc.findOpenOrder(table.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		order = &models.Order{
			TableID: table.ID,
			Status:  models.OrderStatusPending,
		}
		if err := oc.DB.Create(order).Error; err != nil {
			renderServerError(c, err)
			return
		}
		created = true
	} else if err != nil {
		renderServerError(c, err)
		return
	}

	// Price and subtotal are filled by the OrderItem hooks; the order total
	// is recomputed there as well.
	orderItem := models.OrderItem{
		OrderID:             order.ID,
		MenuItemID:          menuItem.ID,
		Quantity:            quantity,
		SpecialInstructions: instructions,
	}
	if err := oc.DB.Create(&orderItem).Error; err != nil {
		renderServerError(c, err)
		return
	}

	if created {
		table.Status = models.TableStatusOccupied
		if err := oc.DB.Save(&table).Error; err != nil {
			renderServerError(c, err)
			return
		}
		utils.InfoLogger.Printf("Order %d opened for table %s", order.ID, table.Number)
	}

	utils.Flash(c, fmt.Sprintf("Added %s to the order", menuItem.Name))
	c.Redirect(http.StatusFound, "/menu/"+tableID)
}

// AddToOrderRedirect handles non-POST hits on the add-to-order path: back to
// the menu without touching anything.
func (oc *OrderController) AddToOrderRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/menu/"+c.Param("table_id"))
}

// ViewOrder -> GET /order/:order_id
func (oc *OrderController) ViewOrder(c *gin.Context) {
	var order models.Order
	err := oc.DB.Preload("Items.MenuItem").Preload("Table").
		First(&order, c.Param("order_id")).Error
	if err != nil {
		renderNotFound(c, "Order")
		return
	}

	c.HTML(http.StatusOK, "view_order.html", gin.H{
		"order":    order,
		"items":    order.Items,
		"statuses": models.OrderStatuses,
		"flashes":  utils.TakeFlashes(c),
	})
}

// UpdateOrderStatus -> POST /order/:order_id/update-status
// Unknown status values are dropped without feedback; a completed order
// frees its table.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var order models.Order
	if err := oc.DB.First(&order, orderID).Error; err != nil {
		renderNotFound(c, "Order")
		return
	}

	newStatus := c.PostForm("status")
	if models.ValidOrderStatus(newStatus) {
		if err := oc.DB.Model(&order).Update("status", newStatus).Error; err != nil {
			renderServerError(c, err)
			return
		}

		if newStatus == models.OrderStatusCompleted {
			err := oc.DB.Model(&models.Table{}).
				Where("id = ?", order.TableID).
				Update("status", models.TableStatusAvailable).Error
			if err != nil {
				renderServerError(c, err)
				return
			}
		}

		utils.InfoLogger.Printf("Order %d status changed to %s", order.ID, newStatus)
		utils.Flash(c, "Order status updated")
	}

	c.Redirect(http.StatusFound, "/order/"+orderID)
}

// UpdateOrderStatusRedirect handles non-POST hits: back to the order page.
func (oc *OrderController) UpdateOrderStatusRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/order/"+c.Param("order_id"))
}

// AllOrders -> GET /all-orders?status=
func (oc *OrderController) AllOrders(c *gin.Context) {
	statusFilter := c.Query("status")

	query := oc.DB.Preload("Items").Preload("Table").Order("created_at DESC")
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		renderServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "all_orders.html", gin.H{
		"orders":         orders,
		"statuses":       models.OrderStatuses,
		"current_filter": statusFilter,
		"flashes":        utils.TakeFlashes(c),
	})
}

// DeleteOrderItem -> POST /delete-item/:item_id
// Removes one line item; the parent order total is recomputed by the
// AfterDelete hook.
func (oc *OrderController) DeleteOrderItem(c *gin.Context) {
	var item models.OrderItem
	if err := oc.DB.First(&item, c.Param("item_id")).Error; err != nil {
		renderNotFound(c, "Order item")
		return
	}

	orderID := item.OrderID
	if err := oc.DB.Delete(&item).Error; err != nil {
		renderServerError(c, err)
		return
	}

	utils.Flash(c, "Item removed from the order")
	c.Redirect(http.StatusFound, fmt.Sprintf("/order/%d", orderID))
}

// DeleteOrderItemRedirect handles non-POST hits: home, nothing deleted.
func (oc *OrderController) DeleteOrderItemRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

/*
========================================
 BACK OFFICE (JSON)
========================================
*/

// GetAllOrders -> list orders with items, optional ?status= filter
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("Items").Preload("Table").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail of one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	err := oc.DB.Preload("Items.MenuItem").Preload("Table").
		First(&order, c.Param("order_id")).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrder -> staff updates status / customer name / notes
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Status       *string `json:"status"`
		CustomerName *string `json:"customer_name"`
		Notes        *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		if !models.ValidOrderStatus(*req.Status) {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown status: %s", *req.Status))
			return
		}
		updates["status"] = *req.Status
	}
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := oc.DB.Model(&order).Updates(updates).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if req.Status != nil && *req.Status == models.OrderStatusCompleted {
		err := oc.DB.Model(&models.Table{}).
			Where("id = ?", order.TableID).
			Update("status", models.TableStatusAvailable).Error
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// DeleteOrder
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	if err := oc.DB.Delete(&models.Order{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}

// AdminDeleteOrderItem -> remove one line item from the back office; the
// parent total recompute fires through the same hook as the HTML flow.
func (oc *OrderController) AdminDeleteOrderItem(c *gin.Context) {
	var item models.OrderItem
	if err := oc.DB.First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := oc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order item deleted", gin.H{
		"item_id":  item.ID,
		"order_id": item.OrderID,
	})
}
