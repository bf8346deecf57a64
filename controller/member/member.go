package member

import (
	"net/http"

	"festops/middleware"
	"festops/model"
	"festops/services"
	"festops/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func MemberController(router *gin.Engine, db *gorm.DB, store storage.ObjectStore) {
	routes := router.Group("/member", middleware.AccessTokenMiddleware())
	{
		routes.GET("/allmembers", func(c *gin.Context) {
			ReadAllMembers(c, db)
		})
		routes.GET("/active", func(c *gin.Context) {
			ReadActiveMembers(c, db)
		})
		routes.POST("/create", middleware.AdminMiddleware(db), func(c *gin.Context) {
			CreateMember(c, db)
		})
		routes.PUT("/update/:id", middleware.AdminMiddleware(db), func(c *gin.Context) {
			UpdateMember(c, db)
		})
		routes.DELETE("/delete/:id", middleware.AdminMiddleware(db), func(c *gin.Context) {
			DeleteMember(c, db)
		})
		routes.GET("/feedbacks/:id", middleware.AdminMiddleware(db), func(c *gin.Context) {
			ReadMemberFeedbacks(c, db)
		})
		routes.POST("/avatar/:id", middleware.AdminMiddleware(db), func(c *gin.Context) {
			UploadMemberAvatar(c, db, store)
		})
	}
}

func ReadAllMembers(c *gin.Context, db *gorm.DB) {
	var members []model.Member
	if err := db.Order("name").Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

// ReadActiveMembers backs the mention picker on the submission form. The
// caller is excluded so staff cannot leave feedback about themselves.
func ReadActiveMembers(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	user, err := services.GetUserByID(db, userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User not found"})
		return
	}

	var members []model.Member
	if err := db.Where("active = ? AND email <> ?", true, user.Email).
		Order("name").Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}
