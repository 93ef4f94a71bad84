package model

import "time"

// Setting holds the site owner's profile shown on the portfolio homepage.
// The application only ever reads and writes a single row; seeding creates
// it when the table is empty (see database.Seeder).
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Email     string    `gorm:"type:varchar(512)" json:"email"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Address   string    `gorm:"type:varchar(512)" json:"address"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name for Setting
func (Setting) TableName() string {
	return "settings"
}
