package report

import (
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"festops/dto"
	"festops/model"
	"festops/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// CreateReport runs the multi-step submission: report row first, then photo
// uploads, then photo metadata, then member mentions. Later steps need the
// report id, so the order is fixed. There is no rollback across steps: a
// failure after the report row exists leaves it behind and the caller only
// sees a generic error (known gap, kept as-is and logged).
func CreateReport(c *gin.Context, db *gorm.DB, store storage.ObjectStore) {
	userId := c.MustGet("userId").(uint)

	eventDate := c.PostForm("event_date")
	honoreeName := strings.TrimSpace(c.PostForm("honoree_name"))
	boxRating, _ := strconv.Atoi(c.PostForm("box_rating"))

	// Validation happens before any store call.
	if eventDate == "" || honoreeName == "" || boxRating < 1 || boxRating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if _, err := time.Parse("2006-01-02", eventDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event_date format, expected YYYY-MM-DD"})
		return
	}

	var mentions []dto.MentionInput
	if raw := c.PostForm("mentions"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &mentions); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mentions format"})
			return
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	report := model.Report{
		EventDate:   eventDate,
		HonoreeName: honoreeName,
		BoxRating:   boxRating,
		CreatedBy:   &userId,
	}
	if description := strings.TrimSpace(c.PostForm("team_description")); description != "" {
		report.TeamDescription = &description
	}

	if err := db.Create(&report).Error; err != nil {
		log.Printf("createreport: failed to insert report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	photos, err := uploadReportPhotos(c, store, form, userId, report.ReportID)
	if err != nil {
		log.Printf("createreport: photo upload failed for report %d: %v", report.ReportID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photos"})
		return
	}

	if len(photos) > 0 {
		if err := db.Create(&photos).Error; err != nil {
			log.Printf("createreport: failed to insert photos for report %d: %v", report.ReportID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photos"})
			return
		}
	}

	// Only selected members with non-blank feedback produce a mention row.
	var mentionRows []model.MemberMention
	for _, mention := range mentions {
		feedback := strings.TrimSpace(mention.Feedback)
		if feedback == "" {
			continue
		}
		mentionRows = append(mentionRows, model.MemberMention{
			ReportID: report.ReportID,
			MemberID: mention.MemberID,
			Feedback: feedback,
		})
	}
	if len(mentionRows) > 0 {
		if err := db.Create(&mentionRows).Error; err != nil {
			log.Printf("createreport: failed to insert mentions for report %d: %v", report.ReportID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save member feedback"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Report created successfully",
		"ReportID": report.ReportID,
	})
}

// uploadReportPhotos pushes every attached file to the object store and
// returns the metadata rows to insert. Files within a category upload
// concurrently; categories run one after another so a failure stops early.
func uploadReportPhotos(c *gin.Context, store storage.ObjectStore, form *multipart.Form, userId uint, reportID uint) ([]model.ReportPhoto, error) {
	var photos []model.ReportPhoto

	for _, category := range model.PhotoCategories {
		files := form.File["photos_"+category]
		if len(files) == 0 {
			continue
		}

		results := make([]model.ReportPhoto, len(files))
		g, ctx := errgroup.WithContext(c.Request.Context())
		for i, fileHeader := range files {
			g.Go(func() error {
				file, err := fileHeader.Open()
				if err != nil {
					return err
				}
				defer file.Close()

				data, err := io.ReadAll(file)
				if err != nil {
					return err
				}

				path := storage.ReportPhotoPath(userId, reportID, category, fileHeader.Filename)
				contentType := fileHeader.Header.Get("Content-Type")
				if err := store.Upload(ctx, path, data, contentType); err != nil {
					return err
				}

				results[i] = model.ReportPhoto{
					ReportID:  reportID,
					PhotoURL:  store.PublicURL(path),
					PhotoType: category,
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		photos = append(photos, results...)
	}

	return photos, nil
}
