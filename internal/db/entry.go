package db

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	CollectionBlog      = "blog"
	CollectionEducation = "education"
	CollectionProjects  = "projects"
	CollectionAuthors   = "authors"
)

// subpostSeparator 分隔父文章与子文章的 ID，例如 "parent/child"。
const subpostSeparator = "/"

// Entry 表示 blog 或 education 集合中的一条内容。
type Entry struct {
	Collection  string `gorm:"primaryKey;size:32"`
	ID          string `gorm:"primaryKey;size:255"`
	ParentID    string `gorm:"index;size:255"`
	Title       string `gorm:"not null"`
	Description string
	Date        time.Time `gorm:"index"`
	Order       int
	Draft       bool `gorm:"index"`
	Tags        StringList `gorm:"type:text"`
	Authors     StringList `gorm:"type:text"`
	Image       string
	Body        string `gorm:"type:text"`
	SourcePath  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BeforeSave keeps ParentID in sync with the compound identifier.
func (e *Entry) BeforeSave(tx *gorm.DB) error {
	e.ParentID = ""
	if IsSubpostID(e.ID) {
		e.ParentID = ParentIDOf(e.ID)
	}
	return nil
}

// IsSubpost reports whether the entry is nested under a parent entry.
func (e Entry) IsSubpost() bool {
	return IsSubpostID(e.ID)
}

// Parent returns the parent identifier, or "" for top-level entries.
func (e Entry) Parent() string {
	if e.ParentID != "" {
		return e.ParentID
	}
	if e.IsSubpost() {
		return ParentIDOf(e.ID)
	}
	return ""
}

// IsSubpostID 判断 ID 是否为子文章。空字符串不是子文章。
func IsSubpostID(id string) bool {
	if id == "" {
		return false
	}
	return strings.Contains(id, subpostSeparator)
}

// ParentIDOf 返回第一个分隔符之前的部分。
func ParentIDOf(id string) string {
	parent, _, _ := strings.Cut(id, subpostSeparator)
	return parent
}
