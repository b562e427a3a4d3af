package db

import "time"

// Author 定义了作者模型
type Author struct {
	ID         string `gorm:"primaryKey;size:255"`
	Name       string `gorm:"not null"`
	Avatar     string
	Bio        string
	Website    string
	Body       string `gorm:"type:text"`
	SourcePath string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
