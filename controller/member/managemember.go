package member

import (
	"errors"
	"net/http"
	"strings"

	"festops/dto"
	"festops/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateMember(c *gin.Context, db *gorm.DB) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	member := model.Member{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Active:     true,
		MemberType: "recreator",
	}

	if err := db.Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "A member with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Member created successfully",
		"MemberID": member.MemberID,
	})
}

func UpdateMember(c *gin.Context, db *gorm.DB) {
	memberId := c.Param("id")

	var member model.Member
	if err := db.Where("member_id = ?", memberId).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		updates["email"] = email
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.MemberType != "" {
		updates["member_type"] = req.MemberType
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No changes detected"})
		return
	}

	if err := db.Model(&member).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "A member with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member updated successfully"})
}

func DeleteMember(c *gin.Context, db *gorm.DB) {
	memberId := c.Param("id")

	var member model.Member
	if err := db.Where("member_id = ?", memberId).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	if err := db.Delete(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
