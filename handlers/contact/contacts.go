package contact

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vaibhavkumar/portfolio-api/database"
	"github.com/vaibhavkumar/portfolio-api/model"
	"github.com/vaibhavkumar/portfolio-api/services/notify"
	"github.com/vaibhavkumar/portfolio-api/utils/response"
)

// ContactHandler handles contact form submissions and the admin inbox
type ContactHandler struct {
	store    database.Storage
	notifier *notify.Dispatcher
}

// NewContactHandler creates a new contact handler
func NewContactHandler(store database.Storage, notifier *notify.Dispatcher) *ContactHandler {
	return &ContactHandler{
		store:    store,
		notifier: notifier,
	}
}

// CreateContactRequest represents a contact form submission
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// CreateContact handles POST /api/contact (public)
func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	var req CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contact, err := h.store.CreateContact(model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to save message")
	}

	// Fire-and-forget; the response does not wait on delivery.
	h.notifier.DispatchContact(*contact)

	return c.JSON(fiber.Map{
		"message": "Message sent",
		"contact": contact,
	})
}

// ListContacts handles GET /api/contact (admin only, newest first)
func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	contacts, err := h.store.ListContacts()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch messages")
	}

	return c.JSON(contacts)
}
