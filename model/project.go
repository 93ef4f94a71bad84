package model

// Project is a portfolio entry. Ids are assigned by the store as the
// creation time in milliseconds, so they are unique without a sequence.
type Project struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title    string `gorm:"type:varchar(512);not null" json:"title"`
	Category string `gorm:"type:varchar(100);default:'web'" json:"category"`
	Img      string `gorm:"type:text" json:"img"`
	Desc     string `gorm:"column:description;type:text" json:"desc"`
	Link     string `gorm:"type:text" json:"link"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
