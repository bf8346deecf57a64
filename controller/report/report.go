package report

import (
	"festops/middleware"
	"festops/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ReportController(router *gin.Engine, db *gorm.DB, store storage.ObjectStore) {
	routes := router.Group("/report", middleware.AccessTokenMiddleware())
	{
		routes.GET("/allreports", func(c *gin.Context) {
			ReadAllReports(c, db)
		})
		routes.GET("/detail/:rid", func(c *gin.Context) {
			ReadReportDetail(c, db)
		})
		routes.POST("/create", func(c *gin.Context) {
			CreateReport(c, db, store)
		})
		routes.DELETE("/delete/:rid", middleware.AdminMiddleware(db), func(c *gin.Context) {
			DeleteReport(c, db)
		})
	}
}
