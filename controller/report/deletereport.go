package report

import (
	"net/http"

	"festops/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteReport removes dependent mentions and photos before the report row
// itself, inside one transaction.
func DeleteReport(c *gin.Context, db *gorm.DB) {
	reportId := c.Param("rid")

	var report model.Report
	if err := db.Where("report_id = ?", reportId).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", report.ReportID).Delete(&model.MemberMention{}).Error; err != nil {
			return err
		}
		if err := tx.Where("report_id = ?", report.ReportID).Delete(&model.ReportPhoto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&report).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully!"})
}
