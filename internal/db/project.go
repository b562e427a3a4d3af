package db

import "time"

// Project 表示作品集中的一个项目，没有子文章的概念。
type Project struct {
	ID          string `gorm:"primaryKey;size:255"`
	Name        string `gorm:"not null"`
	Description string
	Tags        StringList `gorm:"type:text"`
	Link        string
	Image       string
	ImageWidth  int
	ImageHeight int
	StartDate   *time.Time `gorm:"index"`
	EndDate     *time.Time
	Body        string `gorm:"type:text"`
	SourcePath  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StartUnix returns the start date as unix millis, 0 when unknown.
func (p Project) StartUnix() int64 {
	if p.StartDate == nil {
		return 0
	}
	return p.StartDate.UnixMilli()
}
