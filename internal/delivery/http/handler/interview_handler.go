package handler

import (
	"career-compass/internal/content"
	"career-compass/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type InterviewHandler struct{}

func NewInterviewHandler() *InterviewHandler {
	return &InterviewHandler{}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/sets", h.List)
	r.Get("/sets/:slug", h.Get)
}

func (h *InterviewHandler) List(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"sets": content.Sets()})
}

func (h *InterviewHandler) Get(c fiber.Ctx) error {
	set, ok := content.SetBySlug(c.Params("slug"))
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Question set not found", nil)
	}
	return c.Status(fiber.StatusOK).JSON(set)
}
