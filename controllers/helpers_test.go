package controllers_test

import (
	"fmt"
	"html/template"
	"net/url"
	"os"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/naratorn/table-order-app/models"
	"github.com/naratorn/table-order-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// setupTestDB opens a private in-memory SQLite database and migrates every
// model, so each test starts from a clean schema.
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
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

// newTestEngine builds a bare engine with cookie sessions and stub page
// templates, enough for handlers that flash and render.
func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	tmpl := template.Must(template.New("home.html").Parse("home"))
	for _, name := range []string{"menu.html", "view_order.html", "all_orders.html", "error.html"} {
		template.Must(tmpl.New(name).Parse(name))
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	return r
}

// seedMenuFixture provisions one table and one menu item (Pad Thai, 60.00).
func seedMenuFixture(t *testing.T, db *gorm.DB) (models.Table, models.MenuItem) {
	table := models.Table{Number: "T1", Capacity: 4, Status: models.TableStatusAvailable}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}

	category := models.Category{Name: "Noodles"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	item := models.MenuItem{
		CategoryID:  category.ID,
		Name:        "Pad Thai",
		Price:       60.00,
		IsAvailable: true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}

	return table, item
}

func formBody(values map[string]string) string {
	form := url.Values{}
	for k, v := range values {
		form.Set(k, v)
	}
	return form.Encode()
}
