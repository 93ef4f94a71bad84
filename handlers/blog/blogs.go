package blog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vaibhavkumar/portfolio-api/database"
	"github.com/vaibhavkumar/portfolio-api/model"
	"github.com/vaibhavkumar/portfolio-api/utils/response"
	"github.com/vaibhavkumar/portfolio-api/utils/validation"
)

// BlogHandler handles blog-related requests
type BlogHandler struct {
	store     database.Storage
	validator *validation.Validator
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(store database.Storage) *BlogHandler {
	return &BlogHandler{
		store:     store,
		validator: validation.NewValidator(),
	}
}

// CreateBlogRequest represents the request body for creating a blog
type CreateBlogRequest struct {
	Title   string   `json:"title" validate:"required,max=512"`
	Content string   `json:"content" validate:"required"`
	Img     string   `json:"img"`
	Tags    []string `json:"tags"`
	Link    string   `json:"link"`
}

// ListBlogs handles GET /api/blogs (public, newest first)
func (h *BlogHandler) ListBlogs(c *fiber.Ctx) error {
	blogs, err := h.store.ListBlogs()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch blogs")
	}

	return c.JSON(blogs)
}

// CreateBlog handles POST /api/blogs (admin only)
func (h *BlogHandler) CreateBlog(c *fiber.Ctx) error {
	var req CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	blog, err := h.store.CreateBlog(model.Blog{
		Title:   req.Title,
		Content: req.Content,
		Img:     req.Img,
		Tags:    req.Tags,
		Link:    req.Link,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to create blog")
	}

	return c.JSON(fiber.Map{
		"message": "Blog created",
		"blog":    blog,
	})
}

// DeleteBlog handles DELETE /api/blogs/:id (admin only)
func (h *BlogHandler) DeleteBlog(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid blog id")
	}

	if err := h.store.DeleteBlog(id); err != nil {
		return response.InternalServerError(c, "Failed to delete blog")
	}

	return c.JSON(fiber.Map{
		"message": "Blog deleted",
	})
}
