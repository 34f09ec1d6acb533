package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderItem struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	OrderID             uint      `gorm:"not null;index" json:"order_id"`
	Order               Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID          uint      `gorm:"not null" json:"menu_item_id"`
	MenuItem            MenuItem  `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menu_item"`
	Quantity            int       `gorm:"not null" json:"quantity"`
	Price               float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Subtotal            float64   `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	SpecialInstructions string    `gorm:"type:text" json:"special_instructions"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeSave snapshots the current menu price onto the line item, ignoring
// whatever the caller put in Price, and derives the subtotal from it. Later
// menu price changes do not touch lines that were already placed.
func (oi *OrderItem) BeforeSave(tx *gorm.DB) error {
	var item MenuItem
	if err := tx.First(&item, oi.MenuItemID).Error; err != nil {
		return err
	}
	oi.Price = item.Price
	oi.Subtotal = oi.Price * float64(oi.Quantity)
	return nil
}

// AfterSave keeps the parent order's total in sync with its items.
func (oi *OrderItem) AfterSave(tx *gorm.DB) error {
	order := Order{ID: oi.OrderID}
	_, err := order.CalculateTotal(tx)
	return err
}

// AfterDelete recomputes the parent order's total over the surviving items.
func (oi *OrderItem) AfterDelete(tx *gorm.DB) error {
	order := Order{ID: oi.OrderID}
	_, err := order.CalculateTotal(tx)
	return err
}
