package database

import (
	"errors"
	"sync"
	"time"

	"github.com/vaibhavkumar/portfolio-api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// nextID returns the current time in milliseconds, bumped past the previous
// value when two creations land on the same millisecond.
func nextID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

// SettingFields carries a partial settings update. Nil fields keep their
// stored values.
type SettingFields struct {
	Name    *string
	Bio     *string
	Email   *string
	Phone   *string
	Address *string
}

// ProjectFields carries a partial project update. Nil fields keep their
// stored values.
type ProjectFields struct {
	Title    *string
	Category *string
	Img      *string
	Desc     *string
	Link     *string
}

// GetSettings returns the settings row, or nil when none exists yet.
func (s *GORMStore) GetSettings() (*model.Setting, error) {
	var setting model.Setting
	if err := s.db.First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// UpsertSettings merges the given fields into the settings row, creating it
// when the table is empty. Fields left nil are not touched.
func (s *GORMStore) UpsertSettings(fields SettingFields) (*model.Setting, error) {
	var setting model.Setting
	err := s.db.First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		applySettingFields(&setting, fields)
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}

	applySettingFields(&setting, fields)
	if err := s.db.Save(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func applySettingFields(setting *model.Setting, fields SettingFields) {
	if fields.Name != nil {
		setting.Name = *fields.Name
	}
	if fields.Bio != nil {
		setting.Bio = *fields.Bio
	}
	if fields.Email != nil {
		setting.Email = *fields.Email
	}
	if fields.Phone != nil {
		setting.Phone = *fields.Phone
	}
	if fields.Address != nil {
		setting.Address = *fields.Address
	}
}

// CountSettings returns the number of settings rows (used by seeding).
func (s *GORMStore) CountSettings() (int64, error) {
	var count int64
	err := s.db.Model(&model.Setting{}).Count(&count).Error
	return count, err
}

// ListProjects retrieves all projects, insertion order.
func (s *GORMStore) ListProjects() ([]model.Project, error) {
	projects := []model.Project{}
	result := s.db.Find(&projects)
	return projects, result.Error
}

// CreateProject assigns a millisecond id, applies defaults and persists.
func (s *GORMStore) CreateProject(p model.Project) (*model.Project, error) {
	if p.ID == 0 {
		p.ID = nextID()
	}
	if p.Category == "" {
		p.Category = "web"
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject merges the given fields into the project with the given id.
// A missing id is a no-op, not an error.
func (s *GORMStore) UpdateProject(id int64, fields ProjectFields) error {
	updates := map[string]interface{}{}
	if fields.Title != nil {
		updates["title"] = *fields.Title
	}
	if fields.Category != nil {
		updates["category"] = *fields.Category
	}
	if fields.Img != nil {
		updates["img"] = *fields.Img
	}
	if fields.Desc != nil {
		updates["description"] = *fields.Desc
	}
	if fields.Link != nil {
		updates["link"] = *fields.Link
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&model.Project{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteProject removes the project with the given id. A missing id is a
// no-op, not an error.
func (s *GORMStore) DeleteProject(id int64) error {
	return s.db.Where("id = ?", id).Delete(&model.Project{}).Error
}

// ListBlogs retrieves all blogs ordered newest first.
func (s *GORMStore) ListBlogs() ([]model.Blog, error) {
	blogs := []model.Blog{}
	result := s.db.Order("date DESC").Find(&blogs)
	return blogs, result.Error
}

// CreateBlog assigns a millisecond id, defaults date to now and tags to an
// empty list, and persists.
func (s *GORMStore) CreateBlog(b model.Blog) (*model.Blog, error) {
	if b.ID == 0 {
		b.ID = nextID()
	}
	if b.Date.IsZero() {
		b.Date = time.Now().UTC()
	}
	if b.Tags == nil {
		b.Tags = datatypes.JSONSlice[string]{}
	}
	if err := s.db.Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBlog removes the blog with the given id. A missing id is a no-op.
func (s *GORMStore) DeleteBlog(id int64) error {
	return s.db.Where("id = ?", id).Delete(&model.Blog{}).Error
}

// ListContacts retrieves all contact messages ordered newest first.
func (s *GORMStore) ListContacts() ([]model.Contact, error) {
	contacts := []model.Contact{}
	result := s.db.Order("date DESC").Find(&contacts)
	return contacts, result.Error
}

// CreateContact assigns a millisecond id, stamps the submission time and
// persists.
func (s *GORMStore) CreateContact(ct model.Contact) (*model.Contact, error) {
	if ct.ID == 0 {
		ct.ID = nextID()
	}
	if ct.Date.IsZero() {
		ct.Date = time.Now().UTC()
	}
	if err := s.db.Create(&ct).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}
