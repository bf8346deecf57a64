package profile

import (
	"log"
	"net/http"
	"strings"

	"festops/dto"
	"festops/middleware"
	"festops/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProfileController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/profile", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ReadProfile(c, db)
		})
		routes.PUT("/email", func(c *gin.Context) {
			UpdateEmail(c, db)
		})
	}
}

func ReadProfile(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	user, err := services.GetUserByID(db, userId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"UserID":    user.UserID,
		"Name":      user.Name,
		"Email":     user.Email,
		"AvatarURL": user.AvatarURL,
		"Role":      services.GetRole(db, userId),
		"CreatedAt": user.CreatedAt,
	})
}

// UpdateEmail changes the account email and mails a confirmation to the new
// address. An unchanged email is a no-op.
func UpdateEmail(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)

	var req dto.UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.GetUserByID(db, userId)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	newEmail := strings.TrimSpace(req.Email)
	if newEmail == user.Email {
		c.JSON(http.StatusOK, gin.H{"message": "No changes detected"})
		return
	}

	if err := db.Model(user).Update("email", newEmail).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update email"})
		return
	}

	body := "<html><body><p>Your account email was changed to this address.</p></body></html>"
	if err := services.SendEmail(newEmail, "Email change confirmation", body); err != nil {
		log.Printf("profile: failed to send confirmation to %s: %v", newEmail, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Confirmation email sent to the new address"})
}
