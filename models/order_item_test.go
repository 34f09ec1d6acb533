package models_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/naratorn/table-order-app/models"
)

// setupModelsTestDB opens a private in-memory SQLite database per test.
func setupModelsTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Table{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedOrderFixture(t *testing.T, db *gorm.DB) (models.Order, models.MenuItem) {
	category := models.Category{Name: "Noodles"}
	assert.NoError(t, db.Create(&category).Error)

	menuItem := models.MenuItem{
		CategoryID:  category.ID,
		Name:        "Pad Thai",
		Price:       60.00,
		IsAvailable: true,
	}
	assert.NoError(t, db.Create(&menuItem).Error)

	table := models.Table{Number: "T1", Capacity: 4, Status: models.TableStatusAvailable}
	assert.NoError(t, db.Create(&table).Error)

	order := models.Order{TableID: table.ID, Status: models.OrderStatusPending}
	assert.NoError(t, db.Create(&order).Error)

	return order, menuItem
}

func TestOrderItemSnapshotsMenuPrice(t *testing.T) {
	db := setupModelsTestDB(t)
	order, menuItem := seedOrderFixture(t, db)

	// Client-supplied price must be ignored in favor of the menu price.
	item := models.OrderItem{
		OrderID:    order.ID,
		MenuItemID: menuItem.ID,
		Quantity:   2,
		Price:      999.99,
	}
	assert.NoError(t, db.Create(&item).Error)

	assert.Equal(t, 60.00, item.Price)
	assert.Equal(t, 120.00, item.Subtotal)

	var stored models.OrderItem
	assert.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, 60.00, stored.Price)
	assert.Equal(t, 120.00, stored.Subtotal)

	var storedOrder models.Order
	assert.NoError(t, db.First(&storedOrder, order.ID).Error)
	assert.Equal(t, 120.00, storedOrder.TotalAmount)
}

func TestOrderItemResnapshotsOnUpdate(t *testing.T) {
	db := setupModelsTestDB(t)
	order, menuItem := seedOrderFixture(t, db)

	item := models.OrderItem{OrderID: order.ID, MenuItemID: menuItem.ID, Quantity: 1}
	assert.NoError(t, db.Create(&item).Error)
	assert.Equal(t, 60.00, item.Price)

	// Menu price changes; the next save of the line picks it up.
	assert.NoError(t, db.Model(&models.MenuItem{}).Where("id = ?", menuItem.ID).Update("price", 80.00).Error)

	item.Quantity = 3
	assert.NoError(t, db.Save(&item).Error)
	assert.Equal(t, 80.00, item.Price)
	assert.Equal(t, 240.00, item.Subtotal)

	var storedOrder models.Order
	assert.NoError(t, db.First(&storedOrder, order.ID).Error)
	assert.Equal(t, 240.00, storedOrder.TotalAmount)
}

func TestOrderTotalSumsAllItems(t *testing.T) {
	db := setupModelsTestDB(t)
	order, menuItem := seedOrderFixture(t, db)

	drink := models.MenuItem{CategoryID: menuItem.CategoryID, Name: "Thai Iced Tea", Price: 35.00, IsAvailable: true}
	assert.NoError(t, db.Create(&drink).Error)

	first := models.OrderItem{OrderID: order.ID, MenuItemID: menuItem.ID, Quantity: 2}
	assert.NoError(t, db.Create(&first).Error)
	second := models.OrderItem{OrderID: order.ID, MenuItemID: drink.ID, Quantity: 1}
	assert.NoError(t, db.Create(&second).Error)

	var storedOrder models.Order
	assert.NoError(t, db.First(&storedOrder, order.ID).Error)
	assert.Equal(t, 155.00, storedOrder.TotalAmount)
}

func TestDeleteItemRecomputesTotal(t *testing.T) {
	db := setupModelsTestDB(t)
	order, menuItem := seedOrderFixture(t, db)

	first := models.OrderItem{OrderID: order.ID, MenuItemID: menuItem.ID, Quantity: 2}
	assert.NoError(t, db.Create(&first).Error)
	second := models.OrderItem{OrderID: order.ID, MenuItemID: menuItem.ID, Quantity: 1}
	assert.NoError(t, db.Create(&second).Error)

	var storedOrder models.Order
	assert.NoError(t, db.First(&storedOrder, order.ID).Error)
	assert.Equal(t, 180.00, storedOrder.TotalAmount)

	assert.NoError(t, db.Delete(&second).Error)
	assert.NoError(t, db.First(&storedOrder, order.ID).Error)
	assert.Equal(t, 120.00, storedOrder.TotalAmount)

	// Deleting the last remaining item brings the total down to zero.
	assert.NoError(t, db.Delete(&first).Error)
	assert.NoError(t, db.First(&storedOrder, order.ID).Error)
	assert.Equal(t, 0.00, storedOrder.TotalAmount)
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range models.OrderStatuses {
		assert.True(t, models.ValidOrderStatus(s), s)
	}
	assert.False(t, models.ValidOrderStatus("delivered"))
	assert.False(t, models.ValidOrderStatus(""))
}
