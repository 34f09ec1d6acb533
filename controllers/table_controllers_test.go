package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/naratorn/table-order-app/controllers"
	"github.com/naratorn/table-order-app/models"
)

func setupTableRouter(db *gorm.DB) *gin.Engine {
	r := newTestEngine()
	tableCtrl := controllers.NewTableController(db)
	r.GET("/", tableCtrl.Home)
	r.GET("/admin/tables", tableCtrl.GetAllTables)
	r.POST("/admin/tables", tableCtrl.CreateTable)
	r.PATCH("/admin/tables/:table_id", tableCtrl.UpdateTableStatus)
	return r
}

func TestHomePage(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Table{Number: "A1", Capacity: 2, Status: models.TableStatusAvailable})

	r := setupTableRouter(db)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAllTables(t *testing.T) {
	db := setupTestDB(t)

	table1 := models.Table{Number: "A1", Capacity: 4, Status: models.TableStatusAvailable}
	table2 := models.Table{Number: "B1", Capacity: 2, Status: models.TableStatusOccupied}
	db.Create(&table1)
	db.Create(&table2)

	r := setupTableRouter(db)
	req := httptest.NewRequest(http.MethodGet, "/admin/tables", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "List of tables", response["message"])

	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestCreateTable(t *testing.T) {
	db := setupTestDB(t)
	r := setupTableRouter(db)

	payload := map[string]interface{}{"number": "C1", "capacity": 6}
	payloadBytes, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/admin/tables", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var table models.Table
	assert.NoError(t, db.Where("number = ?", "C1").First(&table).Error)
	assert.Equal(t, 6, table.Capacity)
	assert.Equal(t, models.TableStatusAvailable, table.Status)
}

func TestUpdateTableStatus(t *testing.T) {
	db := setupTestDB(t)

	table := models.Table{Number: "C1", Capacity: 4, Status: models.TableStatusAvailable}
	db.Create(&table)

	r := setupTableRouter(db)

	payload := map[string]string{"status": models.TableStatusReserved}
	payloadBytes, _ := json.Marshal(payload)

	url := "/admin/tables/" + strconv.Itoa(int(table.ID))
	req := httptest.NewRequest(http.MethodPatch, url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Table
	assert.NoError(t, db.First(&stored, table.ID).Error)
	assert.Equal(t, models.TableStatusReserved, stored.Status)
}
