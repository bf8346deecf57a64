package connection

import (
	"festops/model"
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func DBConnection() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN is not set")
	}

	// TranslateError maps driver duplicate-key errors onto
	// gorm.ErrDuplicatedKey so the member/user controllers can answer 409.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.UserRole{},
		&model.Member{},
		&model.Report{},
		&model.ReportPhoto{},
		&model.MemberMention{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
