package api_test

import (
	"Lumina/internal/api/config"
	"Lumina/internal/model"
	"Lumina/internal/wire"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "s3cret"

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	old := config.Cfg
	config.Cfg = &config.Config{Auth: config.AuthConfig{Secret: testSecret}}
	t.Cleanup(func() { config.Cfg = old })

	dsn := fmt.Sprintf("file:route_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Post{}, &model.Category{}))

	app, err := wire.BuildApplication(db, config.Cfg)
	require.NoError(t, err)
	return app.Router, db
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListPostsEmptyReturnsArray(t *testing.T) {
	r, _ := newTestApp(t)

	w := doJSON(r, http.MethodGet, "/api/posts", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGetPostUnknownReturns404(t *testing.T) {
	r, _ := newTestApp(t)

	w := doJSON(r, http.MethodGet, "/api/posts/missing", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestSavePostRequiresAuth(t *testing.T) {
	r, db := newTestApp(t)

	body := `{"id":"p1","title":"标题","tags":["a"]}`
	w := doJSON(r, http.MethodPost, "/api/posts", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 未授权的调用不得产生任何存储变更
	var count int64
	require.NoError(t, db.Model(&model.Post{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSavePostRoundTripOverHTTP(t *testing.T) {
	r, _ := newTestApp(t)

	body := `{"id":"p1","title":"标题","excerpt":"摘要","content":"正文","tags":["a","b"],"isFeatured":true}`
	w := doJSON(r, http.MethodPost, "/api/posts", body, testSecret)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"id":"p1"`)

	w = doJSON(r, http.MethodGet, "/api/posts/p1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tags":["a","b"]`)
	assert.Contains(t, w.Body.String(), `"isFeatured":true`)
	assert.Contains(t, w.Body.String(), `"username":"Admin"`)
}

func TestDeletePostIdempotentOverHTTP(t *testing.T) {
	r, _ := newTestApp(t)

	w := doJSON(r, http.MethodDelete, "/api/posts/missing", "", testSecret)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestCreateCategoryValidation(t *testing.T) {
	r, _ := newTestApp(t)

	w := doJSON(r, http.MethodPost, "/api/categories", `{"name":"   "}`, testSecret)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/categories", `{"name":"Sermons"}`, testSecret)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Sermons"`)
	assert.Contains(t, w.Body.String(), `"parentId":null`)
}

func TestDeleteCategoryConflictOverHTTP(t *testing.T) {
	r, db := newTestApp(t)

	require.NoError(t, db.Create(&model.Category{ID: "c1", Name: "在用"}).Error)
	require.NoError(t, db.Create(&model.Post{ID: "p1", CategoryID: "c1", CreatedAt: 1, UpdatedAt: 1}).Error)

	w := doJSON(r, http.MethodDelete, "/api/categories/c1", "", testSecret)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "无法删除")
}

func TestUploadRequiresFilePart(t *testing.T) {
	r, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/upload", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+testSecret)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file uploaded")
}
