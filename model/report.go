// model/report.go
package model

import (
	"time"
)

type Report struct {
	ReportID        uint      `gorm:"column:report_id;primaryKey;autoIncrement"`
	EventDate       string    `gorm:"column:event_date;type:date;not null"`
	HonoreeName     string    `gorm:"column:honoree_name;type:varchar(255);not null"`
	BoxRating       int       `gorm:"column:box_rating;not null"`
	TeamDescription *string   `gorm:"column:team_description;type:text"`
	CreatedBy       *uint     `gorm:"column:created_by"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relations
	Creator *User `gorm:"foreignKey:CreatedBy;references:UserID;constraint:OnDelete:SET NULL"`
}

func (Report) TableName() string {
	return "reports"
}
