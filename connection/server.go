package connection

import (
	"log"
	"os"

	"festops/controller/auth"
	"festops/controller/dashboard"
	"festops/controller/member"
	"festops/controller/profile"
	"festops/controller/report"
	"festops/controller/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func StartServer() {
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not loaded, fallback to OS env vars")
		}
	}

	router := gin.Default()

	DB, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	store, err := StorageConnection()
	if err != nil {
		log.Fatalf("Failed to initialize storage bucket: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.AuthController(router, DB)

	report.ReportController(router, DB, store)

	member.MemberController(router, DB, store)

	user.UserController(router, DB)

	profile.ProfileController(router, DB)

	dashboard.DashboardController(router, DB)

	router.Run()
}
