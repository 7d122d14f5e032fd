package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/resume"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id", h.Get)
	r.Put("/:id", h.Put)
	r.Delete("/:id", h.Delete)
}

func (h *ResumeHandler) Get(c fiber.Ctx) error {
	rs, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewResumeResponse(rs))
}

func (h *ResumeHandler) Put(c fiber.Ctx) error {
	var req dto.ResumeUpsertRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	ownerID, _ := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)

	rs, created, err := h.uc.Upsert(c.Context(), c.Params("id"), ownerID, usecase.ResumeUpsertInput{
		Title:          req.Title,
		Summary:        req.Summary,
		PersonalInfo:   req.PersonalInfo,
		Skills:         req.Skills,
		Experiences:    req.Experience,
		Projects:       req.Projects,
		Education:      req.Education,
		Certifications: req.Certifications,
		Feedback:       req.Feedback,
		Score:          req.Score,
		Strengths:      req.Strengths,
		Improvements:   req.Improvements,
		CareerID:       req.CareerID,
	})
	if err != nil {
		return mapResumeError(err)
	}

	msg := "Resume updated successfully"
	if created {
		msg = "Resume created successfully"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": msg,
		"resume":  dto.NewResumeResponse(rs),
	})
}

func (h *ResumeHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.Message(c, fiber.StatusOK, "Resume deleted successfully")
}

func mapResumeError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNoOwner):
		return middleware.NewAppError(fiber.StatusBadRequest, "No owning user available", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	case errors.Is(err, resume.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Resume already exists", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
