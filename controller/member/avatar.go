package member

import (
	"io"
	"log"
	"net/http"

	"festops/model"
	"festops/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UploadMemberAvatar(c *gin.Context, db *gorm.DB, store storage.ObjectStore) {
	userId := c.MustGet("userId").(uint)
	memberId := c.Param("id")

	var member model.Member
	if err := db.Where("member_id = ?", memberId).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file"})
		return
	}

	path := storage.AvatarPath(userId, fileHeader.Filename)
	if err := store.Upload(c.Request.Context(), path, data, fileHeader.Header.Get("Content-Type")); err != nil {
		log.Printf("avatar: upload failed for member %d: %v", member.MemberID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload avatar"})
		return
	}

	avatarURL := store.PublicURL(path)
	if err := db.Model(&member).Update("avatar_url", avatarURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Avatar updated successfully",
		"AvatarURL": avatarURL,
	})
}
