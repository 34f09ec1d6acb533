package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderStatuses lists every valid order status, in lifecycle order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// OpenOrderStatuses are the statuses of an order that still accepts items.
var OpenOrderStatuses = []string{OrderStatusPending, OrderStatusPreparing}

// ValidOrderStatus reports whether s is one of the five known statuses.
func ValidOrderStatus(s string) bool {
	for _, st := range OrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	TableID      uint        `gorm:"not null;index" json:"table_id"`
	Table        Table       `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"table"`
	CustomerName string      `gorm:"type:varchar(100)" json:"customer_name"`
	Status       string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount  float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Notes        string      `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// CalculateTotal sums the subtotals of all surviving items and persists the
// result on the order. Called from the OrderItem hooks after every item write
// or delete, so the stored total never drifts from its lines.
func (o *Order) CalculateTotal(db *gorm.DB) (float64, error) {
	var total float64
	err := db.Model(&OrderItem{}).
		Where("order_id = ?", o.ID).
		Select("COALESCE(SUM(subtotal), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	o.TotalAmount = total
	if err := db.Model(&Order{}).Where("id = ?", o.ID).Update("total_amount", total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
