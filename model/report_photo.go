// model/report_photo.go
package model

// PhotoCategories are the accepted photo_type values, in form-field order.
var PhotoCategories = []string{
	"event",
	"painting",
	"balloon",
	"animation",
	"characters",
	"workshop",
	"damage",
}

type ReportPhoto struct {
	PhotoID   uint   `gorm:"column:photo_id;primaryKey;autoIncrement"`
	ReportID  uint   `gorm:"column:report_id;not null;index"`
	PhotoURL  string `gorm:"column:photo_url;type:varchar(512);not null"`
	PhotoType string `gorm:"column:photo_type;type:varchar(20);not null"`

	// Relations
	Report Report `gorm:"foreignKey:ReportID;references:ReportID;constraint:OnDelete:CASCADE"`
}

func (ReportPhoto) TableName() string {
	return "report_photos"
}
