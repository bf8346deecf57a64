package auth

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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	AuthController(router, db)
	return router
}

func postJSON(router *gin.Engine, path, token string, payload interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSigninReturnsTokensAndRole(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newAuthRouter(db)
	user, _ := testutil.SeedUser(t, db, "Root", "root@test.dev", "secret123", model.RoleAdmin)

	w := postJSON(router, "/auth/signin", "", map[string]string{
		"email": "root@test.dev", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		} `json:"token"`
		User struct {
			Role string
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)

	// Signin persists a hash of the refresh token for later rotation.
	var after model.User
	require.NoError(t, db.First(&after, "user_id = ?", user.UserID).Error)
	assert.True(t, CompareRefreshToken(after.RefreshTokenHash, resp.Token.RefreshToken))
}

func TestSigninRejectsWrongPassword(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newAuthRouter(db)
	testutil.SeedUser(t, db, "Root", "root@test.dev", "secret123", model.RoleAdmin)

	w := postJSON(router, "/auth/signin", "", map[string]string{
		"email": "root@test.dev", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(router, "/auth/signin", "", map[string]string{
		"email": "unknown@test.dev", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshRotationAndSignout(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newAuthRouter(db)
	testutil.SeedUser(t, db, "Staff", "staff@test.dev", "secret123", model.RoleAnimator)

	w := postJSON(router, "/auth/signin", "", map[string]string{
		"email": "staff@test.dev", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		} `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = postJSON(router, "/auth/newaccesstoken", resp.Token.RefreshToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rotated struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rotated))
	assert.NotEmpty(t, rotated.AccessToken)

	// Signing out revokes the stored hash; the same refresh token dies.
	w = postJSON(router, "/auth/signout", resp.Token.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = postJSON(router, "/auth/newaccesstoken", resp.Token.RefreshToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResetRequestDoesNotRevealAccounts(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newAuthRouter(db)

	w := postJSON(router, "/auth/resetpassword", "", map[string]string{
		"email": "nobody@test.dev", "redirect_url": "https://app.test.dev/reset",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "If the email exists")
}

func TestConfirmPasswordReset(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newAuthRouter(db)
	user, _ := testutil.SeedUser(t, db, "Staff", "staff@test.dev", "old-secret", model.RoleAnimator)
	require.NoError(t, db.Model(&user).Update("refresh_token_hash", "stale-hash").Error)

	token, err := createResetToken(user.UserID)
	require.NoError(t, err)

	w := postJSON(router, "/auth/resetpassword/confirm", "", map[string]string{
		"token": token, "password": "new-secret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var after model.User
	require.NoError(t, db.First(&after, "user_id = ?", user.UserID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.HashedPassword), []byte("new-secret")))
	assert.Empty(t, after.RefreshTokenHash, "sessions are revoked on password change")
}

func TestConfirmPasswordResetRejectsGarbageToken(t *testing.T) {
	db := testutil.SetupDB(t)
	router := newAuthRouter(db)

	w := postJSON(router, "/auth/resetpassword/confirm", "", map[string]string{
		"token": "not-a-jwt", "password": "new-secret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
