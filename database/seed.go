package database

import (
	"fmt"
	"log"

	"github.com/vaibhavkumar/portfolio-api/model"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedSettings(); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// SeedSettings creates the default settings row when none exists. Running it
// again against a seeded database is a no-op.
func (s *Seeder) SeedSettings() error {
	var count int64
	if err := s.db.Model(&model.Setting{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Settings already exist, skipping...")
		return nil
	}

	setting := model.Setting{
		Name:    "Vaibhav Kumar",
		Bio:     "Full-stack developer building things for the web.",
		Email:   "contact@vaibhavkumar.dev",
		Address: "New Delhi, India",
	}

	if err := s.db.Create(&setting).Error; err != nil {
		return err
	}

	log.Printf("Created default settings for %s\n", setting.Name)
	return nil
}

// RunSeeds is a convenience function to run all seeds
func RunSeeds(db *gorm.DB) error {
	seeder := NewSeeder(db)
	return seeder.SeedAll()
}
