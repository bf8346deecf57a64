package auth

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"festops/dto"
	"festops/model"
	"festops/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func createResetToken(userID uint) (string, error) {
	secret := []byte(os.Getenv("JWT_RESET_SECRET_KEY"))
	claims := &model.ResetClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "festops",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseResetToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_RESET_SECRET_KEY")), nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token claims")
	}
	userIDFloat, ok := claims["userId"].(float64)
	if !ok {
		return 0, fmt.Errorf("userId not found in token claims")
	}
	return uint(userIDFloat), nil
}

func resetEmailContent(link string) string {
	return "<html><body>" +
		"<p>A password reset was requested for your account.</p>" +
		"<p><a href=\"" + link + "\">Click here to choose a new password.</a></p>" +
		"<p>The link expires in 30 minutes. If you did not ask for this, ignore this email.</p>" +
		"</body></html>"
}

// RequestPasswordReset always answers success so the endpoint cannot be used
// to probe which emails have accounts.
func RequestPasswordReset(c *gin.Context, db *gorm.DB) {
	var request dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user model.User
	if err := db.Where("email = ?", request.Email).First(&user).Error; err == nil {
		token, err := createResetToken(user.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		link := request.RedirectURL + "?token=" + url.QueryEscape(token)
		if err := services.SendEmail(user.Email, "Password reset", resetEmailContent(link)); err != nil {
			log.Printf("resetpassword: failed to send email to %s: %v", user.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset link has been sent"})
}

func ConfirmPasswordReset(c *gin.Context, db *gorm.DB) {
	var request dto.ConfirmResetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := parseResetToken(request.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	result := db.Model(&model.User{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"hashed_password":    string(hashedPassword),
		"refresh_token_hash": "",
	})
	if result.Error != nil || result.RowsAffected == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
