package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grindsphere/models"
	"grindsphere/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogService counts List calls so tests can assert a rejected request
// never reaches the store.
type fakeCatalogService struct {
	services  []models.Service
	listCalls int
}

func (f *fakeCatalogService) Save(ctx context.Context, ownerID, serviceID string, input models.ServiceInput, bannerPath string, imagePaths []string) (*models.Service, error) {
	return nil, nil
}

func (f *fakeCatalogService) Get(serviceID, viewerID string) (*models.ServiceDetail, error) {
	return nil, nil
}

func (f *fakeCatalogService) List(query, category string, limit int) ([]models.Service, error) {
	f.listCalls++
	return f.services, nil
}

func (f *fakeCatalogService) Delete(ownerID, serviceID string) error { return nil }

func (f *fakeCatalogService) Mine(ownerID string) ([]models.Service, error) { return nil, nil }

func (f *fakeCatalogService) Favorites(userID string) ([]models.Service, error) { return nil, nil }

func (f *fakeCatalogService) OwnerDashboard(ownerID string) (*models.OwnerDashboard, error) {
	return nil, nil
}

func TestTopServicesHandlerRejectsInvalidByBeforeFetching(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fake := &fakeCatalogService{}
	h := &CatalogHandler{CatalogSvc: fake}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/services/top?by=price", nil)

	h.TopServicesHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, fake.listCalls, "invalid 'by' must be rejected before any fetch")
}

func TestTopServicesHandlerOrdersByViews(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fake := &fakeCatalogService{services: []models.Service{
		{ID: "1", Views: 10},
		{ID: "2", Views: 40},
		{ID: "3", Views: 25},
	}}
	h := &CatalogHandler{CatalogSvc: fake}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/services/top?by=views&limit=2", nil)

	h.TopServicesHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Services []models.Service `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "2", resp.Services[0].ID)
	assert.Equal(t, "3", resp.Services[1].ID)
}

func TestUploadFileHandlerRejectsUnknownBucket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &StorageHandler{}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/storage/upload/videos", nil)
	c.Params = gin.Params{{Key: "bucket", Value: "videos"}}

	h.UploadFileHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid bucket", resp.Message)
}
