package member

import (
	"bytes"
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

func newMemberRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	MemberController(router, db, testutil.NewFakeStore())
	return router
}

func doJSON(router *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateMemberDuplicateEmailConflicts(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newMemberRouter(db)
	_, adminToken := testutil.SeedUser(t, db, "Root", "root@test.dev", "secret123", model.RoleAdmin)

	payload := map[string]string{"name": "Bruno", "email": "bruno@test.dev"}
	w := doJSON(router, http.MethodPost, "/member/create", adminToken, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, http.MethodPost, "/member/create", adminToken, payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Where("email = ?", "bruno@test.dev").Count(&count).Error)
	assert.EqualValues(t, 1, count, "exactly one row survives the conflict")
}

func TestCreateMemberRequiresAdmin(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newMemberRouter(db)
	_, staffToken := testutil.SeedUser(t, db, "Staff", "staff@test.dev", "secret123", "")

	w := doJSON(router, http.MethodPost, "/member/create", staffToken,
		map[string]string{"name": "Bruno", "email": "bruno@test.dev"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestActiveMembersExcludeCaller(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newMemberRouter(db)
	_, token := testutil.SeedUser(t, db, "Ana", "ana@test.dev", "secret123", "")

	require.NoError(t, db.Create(&[]model.Member{
		{Name: "Ana", Email: "ana@test.dev", Active: true},
		{Name: "Bruno", Email: "bruno@test.dev", Active: true},
		{Name: "Carla", Email: "carla@test.dev", Active: false},
	}).Error)

	w := doJSON(router, http.MethodGet, "/member/active", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bruno@test.dev")
	assert.NotContains(t, w.Body.String(), "ana@test.dev", "the caller is never in the mention picker")
	assert.NotContains(t, w.Body.String(), "carla@test.dev", "inactive members are hidden")
}

func TestMemberFeedbacksAdminOnly(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newMemberRouter(db)
	_, adminToken := testutil.SeedUser(t, db, "Root", "root@test.dev", "secret123", model.RoleAdmin)
	_, staffToken := testutil.SeedUser(t, db, "Staff", "staff@test.dev", "secret123", "")

	member := model.Member{Name: "Bruno", Email: "bruno@test.dev", Active: true}
	require.NoError(t, db.Create(&member).Error)
	report := model.Report{EventDate: "2024-03-10", HonoreeName: "Ana", BoxRating: 4}
	require.NoError(t, db.Create(&report).Error)
	require.NoError(t, db.Create(&model.MemberMention{
		ReportID: report.ReportID, MemberID: member.MemberID, Feedback: "Great job",
	}).Error)

	w := doJSON(router, http.MethodGet, "/member/feedbacks/1", staffToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "Great job")

	w = doJSON(router, http.MethodGet, "/member/feedbacks/1", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Great job")
	assert.Contains(t, w.Body.String(), "Ana")
}

func TestUpdateAndDeleteMember(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newMemberRouter(db)
	_, adminToken := testutil.SeedUser(t, db, "Root", "root@test.dev", "secret123", model.RoleAdmin)

	member := model.Member{Name: "Bruno", Email: "bruno@test.dev", Active: true}
	require.NoError(t, db.Create(&member).Error)

	inactive := false
	w := doJSON(router, http.MethodPut, "/member/update/1", adminToken, map[string]interface{}{
		"name":   "Bruno Silva",
		"active": &inactive,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated model.Member
	require.NoError(t, db.First(&updated, "member_id = ?", member.MemberID).Error)
	assert.Equal(t, "Bruno Silva", updated.Name)
	assert.False(t, updated.Active)

	w = doJSON(router, http.MethodDelete, "/member/delete/1", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	assert.Zero(t, count)
}
