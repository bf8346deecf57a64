// model/user_role.go
package model

const (
	RoleAdmin    = "admin"
	RoleAnimator = "animator"
)

// UserRole holds at most one row per user. A user without a row is
// treated as an animator, the least-privileged role.
type UserRole struct {
	RoleID uint   `gorm:"column:role_id;primaryKey;autoIncrement"`
	UserID uint   `gorm:"column:user_id;uniqueIndex;not null"`
	Role   string `gorm:"column:role;type:varchar(20);not null"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleAnimator
}
