// model/member.go
package model

type Member struct {
	MemberID   uint    `gorm:"column:member_id;primaryKey;autoIncrement"`
	Name       string  `gorm:"column:name;type:varchar(255);not null"`
	Email      string  `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	AvatarURL  *string `gorm:"column:avatar_url;type:varchar(512)"`
	Active     bool    `gorm:"column:active;default:true"`
	MemberType string  `gorm:"column:member_type;type:varchar(20);default:recreator"`
}

func (Member) TableName() string {
	return "members"
}
