package router

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/shelflife/internal/config"
	"github.com/javajoker/shelflife/internal/expiry"
	"github.com/javajoker/shelflife/internal/i18n"
	"github.com/javajoker/shelflife/internal/models"
	"github.com/javajoker/shelflife/internal/services"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta json.RawMessage `json:"meta"`
}

type APITestSuite struct {
	suite.Suite
	router  *gin.Engine
	store   *services.ProductStore
	catalog *services.Catalog
	prefs   *services.PreferencesService
}

func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(i18n.Initialize("en"))
}

func (suite *APITestSuite) SetupTest() {
	clock := expiry.FixedClock{At: time.Date(2024, 12, 18, 10, 0, 0, 0, time.UTC)}
	logger, _ := test.NewNullLogger()

	suite.store = services.NewProductStore(nil, clock, logger)
	suite.catalog = services.NewCatalog(suite.store, services.DefaultSeedProducts, services.DefaultSamplePool, rand.New(rand.NewSource(3)))
	suite.Require().NoError(suite.catalog.Reset())
	suite.prefs = services.NewPreferencesService(nil, models.DefaultPreferences())

	cfg := &config.Config{
		Server: config.ServerConfig{CORSOrigins: []string{"*"}},
		I18n:   config.I18nConfig{DefaultLocale: "en"},
	}
	ctx, cancel := context.WithCancel(context.Background())
	suite.T().Cleanup(cancel)

	suite.router = Initialize(ctx, cfg, Dependencies{
		Store:       suite.store,
		Catalog:     suite.catalog,
		Preferences: suite.prefs,
		Clock:       clock,
		Logger:      logger,
	})
}

func (suite *APITestSuite) do(method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func (suite *APITestSuite) TestHealth() {
	w, _ := suite.do(http.MethodGet, "/health", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *APITestSuite) TestListProducts() {
	w, resp := suite.do(http.MethodGet, "/v1/products", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), "8", w.Header().Get("X-Total-Count"))

	var view services.ListView
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &view))
	assert.Equal(suite.T(), "📦 User's Products", view.Title)
	assert.Equal(suite.T(), "Total: 8 products", view.CountText)
	assert.Equal(suite.T(), "2024-12-18", view.Reference)
	require.Len(suite.T(), view.Rows, 8)

	// Milk 2024-12-25 is 7 days out, Eggs 2024-12-20 is 2.
	assert.Equal(suite.T(), expiry.TierWarning, view.Rows[0].Status.Tier)
	assert.Equal(suite.T(), "7 days left", view.Rows[0].DaysLabel)
	assert.Equal(suite.T(), expiry.TierCritical, view.Rows[1].Status.Tier)
	assert.Equal(suite.T(), "Expiring Soon!", view.Rows[1].StatusText)
}

func (suite *APITestSuite) TestListProductsPaginated() {
	w, resp := suite.do(http.MethodGet, "/v1/products?page=2&limit=5", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var view services.ListView
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &view))
	require.Len(suite.T(), view.Rows, 3)
	assert.Equal(suite.T(), 5, view.Rows[0].Index)
	assert.Equal(suite.T(), "Total: 8 products", view.CountText)
}

func (suite *APITestSuite) TestListProductsPageBeyondEnd() {
	for _, page := range []string{"3", "9223372036854775807"} {
		w, resp := suite.do(http.MethodGet, "/v1/products?limit=50&page="+page, nil)
		require.Equal(suite.T(), http.StatusOK, w.Code, page)

		var view services.ListView
		require.NoError(suite.T(), json.Unmarshal(resp.Data, &view))
		assert.Empty(suite.T(), view.Rows, page)
		assert.Equal(suite.T(), "Total: 8 products", view.CountText)
	}
}

func (suite *APITestSuite) TestAddProduct() {
	w, resp := suite.do(http.MethodPost, "/v1/products", gin.H{"name": "🧈 Butter", "expiry_date": "2025-01-02"})
	require.Equal(suite.T(), http.StatusCreated, w.Code)

	var data struct {
		Message      string             `json:"message"`
		Product      services.ProductRow `json:"product"`
		DateFallback bool               `json:"date_fallback"`
	}
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &data))
	assert.Equal(suite.T(), "Added: 🧈 Butter", data.Message)
	assert.Equal(suite.T(), 8, data.Product.Index)
	assert.Equal(suite.T(), "Jan 2, 2025", data.Product.DisplayDate)
	assert.False(suite.T(), data.DateFallback)
	assert.Equal(suite.T(), 9, suite.store.Count())
}

func (suite *APITestSuite) TestAddProductWithBadDateIsFlagged() {
	w, resp := suite.do(http.MethodPost, "/v1/products", gin.H{"name": "Mystery", "expiry_date": "not-a-date"})
	require.Equal(suite.T(), http.StatusCreated, w.Code)

	var data struct {
		Product      services.ProductRow `json:"product"`
		DateFallback bool               `json:"date_fallback"`
		Warning      string             `json:"warning"`
	}
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &data))
	assert.True(suite.T(), data.DateFallback)
	assert.NotEmpty(suite.T(), data.Warning)
	assert.Equal(suite.T(), "2024-12-18", data.Product.ExpiryDate)
	assert.Equal(suite.T(), 0, data.Product.Status.DaysLeft)
}

func (suite *APITestSuite) TestAddProductRequiresName() {
	w, resp := suite.do(http.MethodPost, "/v1/products", gin.H{"expiry_date": "2025-01-02"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	require.NotNil(suite.T(), resp.Error)
	assert.Equal(suite.T(), "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(suite.T(), 8, suite.store.Count())
}

func (suite *APITestSuite) TestAddSampleProduct() {
	w, _ := suite.do(http.MethodPost, "/v1/products/sample", nil)
	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Equal(suite.T(), 9, suite.store.Count())
}

func (suite *APITestSuite) TestDeleteByPosition() {
	w, resp := suite.do(http.MethodDelete, "/v1/positions/0", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var data struct {
		Message   string `json:"message"`
		CountText string `json:"count_text"`
	}
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &data))
	assert.Equal(suite.T(), "Removed: 🥛 Milk", data.Message)
	assert.Equal(suite.T(), "Total: 7 products", data.CountText)

	first, err := suite.store.Get(0)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "🥚 Eggs", first.Name)
}

func (suite *APITestSuite) TestPositionOutOfRange() {
	w, resp := suite.do(http.MethodDelete, "/v1/positions/8", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	require.NotNil(suite.T(), resp.Error)
	assert.Equal(suite.T(), "No product at position 8", resp.Error.Message)
	assert.Equal(suite.T(), 8, suite.store.Count())

	w, _ = suite.do(http.MethodGet, "/v1/positions/-1", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w, resp = suite.do(http.MethodGet, "/v1/positions/first", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	require.NotNil(suite.T(), resp.Error)
	assert.Equal(suite.T(), "Invalid product position", resp.Error.Message)
}

func (suite *APITestSuite) TestGetAndDeleteByID() {
	eggs, err := suite.store.Get(1)
	require.NoError(suite.T(), err)

	w, resp := suite.do(http.MethodGet, "/v1/products/"+eggs.ID.String(), nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	var data struct {
		Product services.ProductRow `json:"product"`
	}
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &data))
	assert.Equal(suite.T(), "🥚 Eggs", data.Product.Name)
	assert.Equal(suite.T(), 1, data.Product.Index)

	w, _ = suite.do(http.MethodDelete, "/v1/products/"+eggs.ID.String(), nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w, _ = suite.do(http.MethodDelete, "/v1/products/"+eggs.ID.String(), nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w, resp = suite.do(http.MethodGet, "/v1/products/not-a-uuid", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	require.NotNil(suite.T(), resp.Error)
	assert.Equal(suite.T(), "Invalid product ID", resp.Error.Message)
}

func (suite *APITestSuite) TestInvalidIDIsTranslated() {
	req, _ := http.NewRequest(http.MethodGet, "/v1/products/not-a-uuid", nil)
	req.Header.Set("Accept-Language", "zh-TW")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "無效的產品編號")
}

func (suite *APITestSuite) TestResetProducts() {
	_, err := suite.store.RemoveAt(0)
	require.NoError(suite.T(), err)

	w, _ := suite.do(http.MethodPost, "/v1/products/reset", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), 8, suite.store.Count())
}

func (suite *APITestSuite) TestLaunchFlow() {
	var data struct {
		NextScreen models.Screen `json:"next_screen"`
	}

	_, resp := suite.do(http.MethodGet, "/v1/launch", nil)
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &data))
	assert.Equal(suite.T(), models.ScreenOnboarding, data.NextScreen)

	_, resp = suite.do(http.MethodPost, "/v1/onboarding/complete", nil)
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &data))
	assert.Equal(suite.T(), models.ScreenSetup, data.NextScreen)

	w, resp := suite.do(http.MethodPut, "/v1/preferences", gin.H{"user_name": "Ana", "color_theme": "black", "notifications": false})
	require.Equal(suite.T(), http.StatusOK, w.Code)
	var saved struct {
		ThemeToast string        `json:"theme_toast"`
		NextScreen models.Screen `json:"next_screen"`
	}
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &saved))
	assert.Equal(suite.T(), "Dark theme selected", saved.ThemeToast)
	assert.Equal(suite.T(), models.ScreenProducts, saved.NextScreen)

	_, resp = suite.do(http.MethodGet, "/v1/products?limit=1", nil)
	var view services.ListView
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &view))
	assert.Equal(suite.T(), "📦 Ana's Products", view.Title)
}

func (suite *APITestSuite) TestSavePreferencesRejectsUnknownTheme() {
	w, resp := suite.do(http.MethodPut, "/v1/preferences", gin.H{"user_name": "Ana", "color_theme": "neon"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	require.NotNil(suite.T(), resp.Error)
	assert.Equal(suite.T(), "VALIDATION_ERROR", resp.Error.Code)
	assert.False(suite.T(), suite.prefs.Get().SetupCompleted)
}

func (suite *APITestSuite) TestOnboardingAndThemes() {
	w, _ := suite.do(http.MethodGet, "/v1/onboarding", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	_, resp := suite.do(http.MethodGet, "/v1/themes", nil)
	var data struct {
		Themes []services.Theme `json:"themes"`
	}
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &data))
	assert.Len(suite.T(), data.Themes, 6)
}

func (suite *APITestSuite) TestConvertDates() {
	var data struct {
		Storage string        `json:"storage"`
		Display string        `json:"display"`
		Status  expiry.Status `json:"status"`
	}

	w, resp := suite.do(http.MethodGet, "/v1/dates/convert?storage=2024-12-25", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &data))
	assert.Equal(suite.T(), "Dec 25, 2024", data.Display)
	assert.Equal(suite.T(), 7, data.Status.DaysLeft)

	w, resp = suite.do(http.MethodGet, "/v1/dates/convert?display=Jan%2005,%202025", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	require.NoError(suite.T(), json.Unmarshal(resp.Data, &data))
	assert.Equal(suite.T(), "2025-01-05", data.Storage)
	assert.Equal(suite.T(), "Jan 5, 2025", data.Display)

	w, resp = suite.do(http.MethodGet, "/v1/dates/convert?storage=2025-02-30", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	require.NotNil(suite.T(), resp.Error)
	assert.Equal(suite.T(), "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(suite.T(), w.Body.String(), `"tag":"storage_date"`)

	w, resp = suite.do(http.MethodGet, "/v1/dates/convert", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	require.NotNil(suite.T(), resp.Error)
	assert.Equal(suite.T(), "VALIDATION_ERROR", resp.Error.Code)

	w, _ = suite.do(http.MethodGet, "/v1/dates/convert?display=December%2025th", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
