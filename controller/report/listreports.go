package report

import (
	"net/http"

	"festops/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ReadAllReports(c *gin.Context, db *gorm.DB) {
	var reports []model.Report

	if err := db.Preload("Creator").Order("created_at DESC").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	reportList := make([]gin.H, 0, len(reports))
	for _, report := range reports {
		creatorName := "Unknown"
		if report.Creator != nil {
			creatorName = report.Creator.Name
		}
		reportList = append(reportList, gin.H{
			"ReportID":        report.ReportID,
			"EventDate":       report.EventDate,
			"HonoreeName":     report.HonoreeName,
			"BoxRating":       report.BoxRating,
			"TeamDescription": report.TeamDescription,
			"CreatedAt":       report.CreatedAt,
			"CreatorName":     creatorName,
		})
	}

	c.JSON(http.StatusOK, gin.H{"reports": reportList})
}
