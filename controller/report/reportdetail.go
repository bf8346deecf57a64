package report

import (
	"net/http"

	"festops/model"
	"festops/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ReadReportDetail fetches photos, mentions and the creator profile in
// parallel; the three queries are independent. Zero photos, zero mentions and
// a missing creator are all valid outcomes, not errors. Feedback text is an
// admin-only field and is stripped for everyone else.
func ReadReportDetail(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	reportId := c.Param("rid")

	var report model.Report
	if err := db.Where("report_id = ?", reportId).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	var (
		photos   []model.ReportPhoto
		mentions []model.MemberMention
		creator  *model.User
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		return db.Where("report_id = ?", report.ReportID).Find(&photos).Error
	})
	g.Go(func() error {
		return db.Preload("Member").Where("report_id = ?", report.ReportID).Find(&mentions).Error
	})
	g.Go(func() error {
		if report.CreatedBy == nil {
			return nil
		}
		var user model.User
		err := db.Select("user_id", "name", "email").Where("user_id = ?", *report.CreatedBy).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err == nil {
			creator = &user
		}
		return err
	})
	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	photosByCategory := make(map[string][]gin.H)
	for _, photo := range photos {
		photosByCategory[photo.PhotoType] = append(photosByCategory[photo.PhotoType], gin.H{
			"PhotoID":  photo.PhotoID,
			"PhotoURL": photo.PhotoURL,
		})
	}

	isAdmin := services.IsAdmin(db, userId)
	var mentionList []gin.H
	for _, mention := range mentions {
		entry := gin.H{
			"MentionID":  mention.MentionID,
			"MemberName": mention.Member.Name,
		}
		if isAdmin {
			entry["Feedback"] = mention.Feedback
		}
		mentionList = append(mentionList, entry)
	}

	response := gin.H{
		"ReportID":        report.ReportID,
		"EventDate":       report.EventDate,
		"HonoreeName":     report.HonoreeName,
		"BoxRating":       report.BoxRating,
		"TeamDescription": report.TeamDescription,
		"CreatedAt":       report.CreatedAt,
		"Photos":          photosByCategory,
		"Mentions":        mentionList,
	}
	if creator != nil {
		response["Creator"] = gin.H{"Name": creator.Name, "Email": creator.Email}
	}

	c.JSON(http.StatusOK, response)
}
