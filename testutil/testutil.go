// Package testutil wires an in-memory database, signed tokens and a fake
// object store for controller tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"festops/model"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET_KEY", "test-secret")
	os.Setenv("JWT_REFRESH_SECRET_KEY", "test-refresh-secret")
	os.Setenv("JWT_RESET_SECRET_KEY", "test-reset-secret")
}

func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// One connection, or every pooled conn would see its own empty :memory: DB.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.UserRole{},
		&model.Member{},
		&model.Report{},
		&model.ReportPhoto{},
		&model.MemberMention{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// SeedUser creates a user with the given role ("" means no role row) and
// returns it with a valid access token.
func SeedUser(t *testing.T, db *gorm.DB, name, email, password, role string) (model.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user := model.User{Name: name, Email: email, HashedPassword: string(hashed)}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if role != "" {
		if err := db.Create(&model.UserRole{UserID: user.UserID, Role: role}).Error; err != nil {
			t.Fatalf("seed role: %v", err)
		}
	}
	return user, AccessToken(t, user.UserID)
}

func AccessToken(t *testing.T, userID uint) string {
	t.Helper()

	claims := &model.AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "festops",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// FakeStore records uploads in memory. Setting Err makes every upload fail.
type FakeStore struct {
	mu      sync.Mutex
	Err     error
	Uploads map[string][]byte
}

func NewFakeStore() *FakeStore {
	return &FakeStore{Uploads: make(map[string][]byte)}
}

func (s *FakeStore) Upload(_ context.Context, path string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Uploads[path] = data
	return nil
}

func (s *FakeStore) PublicURL(path string) string {
	return fmt.Sprintf("https://storage.test/%s", path)
}

func (s *FakeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Uploads)
}
