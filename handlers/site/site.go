package site

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vaibhavkumar/portfolio-api/database"
	"github.com/vaibhavkumar/portfolio-api/utils/response"
	"github.com/vaibhavkumar/portfolio-api/utils/validation"
)

// SiteHandler serves the public site payload and admin settings updates
type SiteHandler struct {
	store     database.Storage
	validator *validation.Validator
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(store database.Storage) *SiteHandler {
	return &SiteHandler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// UpdateSettingsRequest represents the request body for updating settings.
// Absent fields keep their stored values.
type UpdateSettingsRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=255"`
	Bio     *string `json:"bio"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Address *string `json:"address" validate:"omitempty,max=512"`
}

// GetData handles GET /api/data - everything the frontend needs in one call
func (h *SiteHandler) GetData(c *fiber.Ctx) error {
	settings, err := h.store.GetSettings()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch settings")
	}

	projects, err := h.store.ListProjects()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch projects")
	}

	blogs, err := h.store.ListBlogs()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch blogs")
	}

	return c.JSON(fiber.Map{
		"settings": settings,
		"projects": projects,
		"blogs":    blogs,
	})
}

// UpdateSettings handles PUT /api/settings (admin only)
func (h *SiteHandler) UpdateSettings(c *fiber.Ctx) error {
	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	settings, err := h.store.UpsertSettings(database.SettingFields{
		Name:    req.Name,
		Bio:     req.Bio,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to update settings")
	}

	return c.JSON(fiber.Map{
		"message":  "Settings updated",
		"settings": settings,
	})
}
