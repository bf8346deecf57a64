package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"festops/model"
	"festops/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	DashboardController(router, db)
	return router
}

func getDashboard(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDashboardRequiresAdmin(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newDashboardRouter(db)
	_, staffToken := testutil.SeedUser(t, db, "Staff", "staff@test.dev", "secret123", model.RoleAnimator)

	w := getDashboard(router, staffToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDashboardEmptyState(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newDashboardRouter(db)
	_, adminToken := testutil.SeedUser(t, db, "Root", "root@test.dev", "secret123", model.RoleAdmin)

	w := getDashboard(router, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalReports  int64         `json:"totalReports"`
		AverageRating float64       `json:"averageRating"`
		RecentReports []interface{} `json:"recentReports"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.TotalReports)
	assert.Zero(t, resp.AverageRating)
	assert.Empty(t, resp.RecentReports)
}

func TestDashboardAggregates(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newDashboardRouter(db)
	admin, adminToken := testutil.SeedUser(t, db, "Root", "root@test.dev", "secret123", model.RoleAdmin)

	for _, rating := range []int{5, 4, 4} {
		require.NoError(t, db.Create(&model.Report{
			EventDate:   "2024-03-10",
			HonoreeName: "Ana",
			BoxRating:   rating,
			CreatedBy:   &admin.UserID,
		}).Error)
	}

	w := getDashboard(router, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalReports     int64   `json:"totalReports"`
		AverageRating    float64 `json:"averageRating"`
		ReportsThisMonth int64   `json:"reportsThisMonth"`
		RecentReports    []struct {
			CreatorName string
			BoxRating   int
		} `json:"recentReports"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 3, resp.TotalReports)
	assert.InDelta(t, 4.3, resp.AverageRating, 0.001)
	assert.EqualValues(t, 3, resp.ReportsThisMonth)
	require.Len(t, resp.RecentReports, 3)
	assert.Equal(t, "Root", resp.RecentReports[0].CreatorName)
}
