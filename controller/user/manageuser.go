package user

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"festops/dto"
	"festops/model"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser provisions a login identity together with its role row and, for
// animators, a mirrored Member record so the new user shows up in the roster.
func CreateUser(c *gin.Context, db *gorm.DB) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !model.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	newUser := model.User{
		Name:           name,
		Email:          email,
		HashedPassword: string(hashedPassword),
		AvatarURL:      "none-url",
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		if err := tx.Create(&model.UserRole{UserID: newUser.UserID, Role: req.Role}).Error; err != nil {
			return err
		}
		if req.Role == model.RoleAnimator {
			var existing model.Member
			err := tx.Where("email = ?", email).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				return tx.Create(&model.Member{
					Name:       name,
					Email:      email,
					Active:     true,
					MemberType: model.RoleAnimator,
				}).Error
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists"})
			return
		}
		log.Printf("createuser: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "UserID": newUser.UserID})
}

// UpdateUser changes the profile name and role, mirroring both into a Member
// matched by the profile's email when one exists.
func UpdateUser(c *gin.Context, db *gorm.DB) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if req.UserID == 0 || name == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !model.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	var target model.User
	if err := db.Where("user_id = ?", req.UserID).First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&target).Update("name", name).Error; err != nil {
			return err
		}

		var role model.UserRole
		err := tx.Where("user_id = ?", target.UserID).First(&role).Error
		if err == gorm.ErrRecordNotFound {
			if err := tx.Create(&model.UserRole{UserID: target.UserID, Role: req.Role}).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else if err := tx.Model(&role).Update("role", req.Role).Error; err != nil {
			return err
		}

		// Mirror into the roster when a member carries this email.
		return tx.Model(&model.Member{}).Where("email = ?", target.Email).
			Updates(map[string]interface{}{"name": name, "member_type": req.Role}).Error
	})
	if err != nil {
		log.Printf("updateuser: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func DeleteUser(c *gin.Context, db *gorm.DB) {
	callerId := c.MustGet("userId").(uint)

	targetId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	if uint(targetId) == callerId {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admins cannot delete their own account"})
		return
	}

	var target model.User
	if err := db.Where("user_id = ?", targetId).First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Reports survive with created_by nulled by the FK; only the identity and
	// its role rows go.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", target.UserID).Delete(&model.UserRole{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Report{}).Where("created_by = ?", target.UserID).
			Update("created_by", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&target).Error
	})
	if err != nil {
		log.Printf("deleteuser: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
