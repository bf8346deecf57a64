package dashboard

import (
	"math"
	"net/http"
	"time"

	"festops/middleware"
	"festops/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DashboardController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/dashboard", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(db))
	{
		routes.GET("", func(c *gin.Context) {
			ReadDashboard(c, db)
		})
	}
}

func ReadDashboard(c *gin.Context, db *gorm.DB) {
	var totalReports int64
	if err := db.Model(&model.Report{}).Count(&totalReports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var averageRating float64
	if totalReports > 0 {
		if err := db.Model(&model.Report{}).Select("AVG(box_rating)").Scan(&averageRating).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		averageRating = math.Round(averageRating*10) / 10
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var reportsThisMonth int64
	if err := db.Model(&model.Report{}).Where("created_at >= ?", startOfMonth).
		Count(&reportsThisMonth).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var recent []model.Report
	if err := db.Preload("Creator").Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	recentList := make([]gin.H, 0, len(recent))
	for _, report := range recent {
		creatorName := "Unknown"
		if report.Creator != nil {
			creatorName = report.Creator.Name
		}
		recentList = append(recentList, gin.H{
			"ReportID":    report.ReportID,
			"EventDate":   report.EventDate,
			"HonoreeName": report.HonoreeName,
			"BoxRating":   report.BoxRating,
			"CreatorName": creatorName,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalReports":     totalReports,
		"averageRating":    averageRating,
		"reportsThisMonth": reportsThisMonth,
		"recentReports":    recentList,
	})
}
