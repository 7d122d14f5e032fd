package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OnboardingHandler struct {
	uc usecase.OnboardingUsecase
}

func NewOnboardingHandler(uc usecase.OnboardingUsecase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

func (h *OnboardingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/onboarding", h.Capture)
}

func (h *OnboardingHandler) Capture(c fiber.Ctx) error {
	var in usecase.OnboardingInput
	if err := c.Bind().Body(&in); err != nil {
		return response.Fail(c, fiber.StatusInternalServerError, "Failed to process onboarding data", err.Error())
	}

	res := h.uc.Capture(c.Context(), in)
	return response.OK(c, fiber.StatusOK, "Onboarding data received", res)
}
