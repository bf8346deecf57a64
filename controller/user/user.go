package user

import (
	"net/http"

	"festops/middleware"
	"festops/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserController exposes the privileged user-management operations. Every
// route resolves the caller from the bearer token and re-checks the admin
// role against user_roles; the client hiding these screens is not a security
// boundary.
func UserController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/user", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(db))
	{
		routes.GET("/allusers", func(c *gin.Context) {
			ReadAllUsers(c, db)
		})
		routes.POST("/create", func(c *gin.Context) {
			CreateUser(c, db)
		})
		routes.PUT("/update", func(c *gin.Context) {
			UpdateUser(c, db)
		})
		routes.DELETE("/delete/:id", func(c *gin.Context) {
			DeleteUser(c, db)
		})
	}
}

func ReadAllUsers(c *gin.Context, db *gorm.DB) {
	var users []model.User
	if err := db.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var roles []model.UserRole
	if err := db.Find(&roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	roleByUser := make(map[uint]string, len(roles))
	for _, role := range roles {
		roleByUser[role.UserID] = role.Role
	}

	userList := make([]gin.H, 0, len(users))
	for _, user := range users {
		role, ok := roleByUser[user.UserID]
		if !ok {
			role = model.RoleAnimator
		}
		userList = append(userList, gin.H{
			"UserID":    user.UserID,
			"Name":      user.Name,
			"Email":     user.Email,
			"Role":      role,
			"CreatedAt": user.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"users": userList})
}
