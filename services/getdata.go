package services

import (
	"festops/model"

	"gorm.io/gorm"
)

func GetUserByID(db *gorm.DB, userID uint) (*model.User, error) {
	var user model.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetRole resolves a user's role, defaulting to animator when no row exists.
func GetRole(db *gorm.DB, userID uint) string {
	var role model.UserRole
	if err := db.Where("user_id = ?", userID).First(&role).Error; err != nil {
		return model.RoleAnimator
	}
	return role.Role
}

// IsAdmin is the capability check consulted wherever an admin-only field is
// shaped into a response. Route-level gating uses middleware.AdminMiddleware,
// which runs the same query.
func IsAdmin(db *gorm.DB, userID uint) bool {
	return GetRole(db, userID) == model.RoleAdmin
}
