package model

import "time"

// Contact is a message submitted through the public contact form. Records
// are created by anyone, read only by the admin, and never updated.
type Contact struct {
	ID      int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name    string    `gorm:"type:varchar(255)" json:"name"`
	Email   string    `gorm:"type:varchar(512)" json:"email"`
	Message string    `gorm:"type:text" json:"message"`
	Date    time.Time `gorm:"not null;index" json:"date"`
}

// TableName specifies the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}
