package project

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vaibhavkumar/portfolio-api/database"
	"github.com/vaibhavkumar/portfolio-api/model"
	"github.com/vaibhavkumar/portfolio-api/utils/response"
	"github.com/vaibhavkumar/portfolio-api/utils/validation"
)

// ProjectHandler handles project-related requests
type ProjectHandler struct {
	store     database.Storage
	validator *validation.Validator
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(store database.Storage) *ProjectHandler {
	return &ProjectHandler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// CreateProjectRequest represents the request body for creating a project
type CreateProjectRequest struct {
	Title    string `json:"title" validate:"required,max=512"`
	Category string `json:"category" validate:"omitempty,max=100"`
	Img      string `json:"img"`
	Desc     string `json:"desc"`
	Link     string `json:"link"`
}

// UpdateProjectRequest represents the request body for updating a project.
// Absent fields keep their stored values.
type UpdateProjectRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=512"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Img      *string `json:"img"`
	Desc     *string `json:"desc"`
	Link     *string `json:"link"`
}

// CreateProject handles POST /api/projects (admin only)
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	project, err := h.store.CreateProject(model.Project{
		Title:    req.Title,
		Category: req.Category,
		Img:      req.Img,
		Desc:     req.Desc,
		Link:     req.Link,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to create project")
	}

	return c.JSON(fiber.Map{
		"message": "Project created",
		"project": project,
	})
}

// UpdateProject handles PUT /api/projects/:id (admin only)
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid project id")
	}

	var req UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	// A missing id is treated as success, same as the delete below.
	if err := h.store.UpdateProject(id, database.ProjectFields{
		Title:    req.Title,
		Category: req.Category,
		Img:      req.Img,
		Desc:     req.Desc,
		Link:     req.Link,
	}); err != nil {
		return response.InternalServerError(c, "Failed to update project")
	}

	return c.JSON(fiber.Map{
		"message": "Project updated",
	})
}

// DeleteProject handles DELETE /api/projects/:id (admin only)
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid project id")
	}

	if err := h.store.DeleteProject(id); err != nil {
		return response.InternalServerError(c, "Failed to delete project")
	}

	return c.JSON(fiber.Map{
		"message": "Project deleted",
	})
}
