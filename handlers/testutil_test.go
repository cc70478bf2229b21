package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-global DB at a fresh on-disk database in a
// per-test temp dir, mirroring how the handlers run in production.
func setupTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	config.DB = db
	config.StrictTotals = false
}

func seedMenuItem(t *testing.T, name string, price float64, available bool) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:        name,
		Price:       price,
		Category:    "Main Course",
		IsVeg:       true,
		IsAvailable: available,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item %q: %v", name, err)
	}
	return item
}

func performJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}
