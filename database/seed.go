package database

import (
	"github.com/naratorn/table-order-app/models"
	"github.com/naratorn/table-order-app/utils"
	"gorm.io/gorm"
)

// Seed pre-provisions dining tables and a starter menu so a fresh install is
// usable immediately. It is idempotent: nothing is inserted once any table
// row exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Table{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		utils.InfoLogger.Println("Seed skipped: tables already provisioned")
		return nil
	}

	tables := []models.Table{
		{Number: "T1", Capacity: 4, Status: models.TableStatusAvailable},
		{Number: "T2", Capacity: 4, Status: models.TableStatusAvailable},
		{Number: "T3", Capacity: 2, Status: models.TableStatusAvailable},
		{Number: "T4", Capacity: 6, Status: models.TableStatusAvailable},
		{Number: "T5", Capacity: 8, Status: models.TableStatusAvailable},
	}
	if err := db.Create(&tables).Error; err != nil {
		return err
	}

	categories := []models.Category{
		{Name: "Stir Fried", Description: "Wok dishes"},
		{Name: "Noodles", Description: "Noodle dishes"},
		{Name: "Drinks", Description: "Beverages"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	items := []models.MenuItem{
		{CategoryID: categories[0].ID, Name: "Krapow Moo", Description: "Basil pork with rice", Price: 65},
		{CategoryID: categories[0].ID, Name: "Fried Rice", Description: "Thai style fried rice", Price: 60},
		{CategoryID: categories[1].ID, Name: "Pad Thai", Description: "Classic stir fried rice noodles", Price: 60},
		{CategoryID: categories[1].ID, Name: "Pad See Ew", Description: "Soy sauce noodles", Price: 60},
		{CategoryID: categories[2].ID, Name: "Thai Iced Tea", Description: "Sweet iced tea", Price: 35},
		{CategoryID: categories[2].ID, Name: "Water", Description: "Bottled water", Price: 15},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seeded %d tables, %d categories, %d menu items",
		len(tables), len(categories), len(items))
	return nil
}
