package member

import (
	"net/http"

	"festops/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReadMemberFeedbacks lists a member's mention history with the owning
// report's honoree name and event date. Individual feedback is admin-only;
// the route is gated by AdminMiddleware.
func ReadMemberFeedbacks(c *gin.Context, db *gorm.DB) {
	memberId := c.Param("id")

	var member model.Member
	if err := db.Where("member_id = ?", memberId).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	var mentions []model.MemberMention
	if err := db.Preload("Report").Where("member_id = ?", member.MemberID).
		Order("created_at DESC").Find(&mentions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	feedbackList := make([]gin.H, 0, len(mentions))
	for _, mention := range mentions {
		feedbackList = append(feedbackList, gin.H{
			"MentionID":   mention.MentionID,
			"Feedback":    mention.Feedback,
			"CreatedAt":   mention.CreatedAt,
			"HonoreeName": mention.Report.HonoreeName,
			"EventDate":   mention.Report.EventDate,
		})
	}

	c.JSON(http.StatusOK, gin.H{"feedbacks": feedbackList})
}
