package model

import (
	"time"

	"gorm.io/datatypes"
)

// Blog is a published post. Listings are served newest first by Date.
type Blog struct {
	ID      int64                       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title   string                      `gorm:"type:varchar(512);not null" json:"title"`
	Content string                      `gorm:"type:text;not null" json:"content"`
	Img     string                      `gorm:"type:text" json:"img"`
	Tags    datatypes.JSONSlice[string] `json:"tags"`
	Link    string                      `gorm:"type:text" json:"link"`
	Date    time.Time                   `gorm:"not null;index" json:"date"`
}

// TableName specifies the table name for Blog
func (Blog) TableName() string {
	return "blogs"
}
