// model/member_mention.go
package model

import (
	"time"
)

type MemberMention struct {
	MentionID uint      `gorm:"column:mention_id;primaryKey;autoIncrement"`
	ReportID  uint      `gorm:"column:report_id;not null;index"`
	MemberID  uint      `gorm:"column:member_id;not null;index"`
	Feedback  string    `gorm:"column:feedback;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relations
	Report Report `gorm:"foreignKey:ReportID;references:ReportID;constraint:OnDelete:CASCADE"`
	Member Member `gorm:"foreignKey:MemberID;references:MemberID;constraint:OnDelete:CASCADE"`
}

func (MemberMention) TableName() string {
	return "report_member_mentions"
}
