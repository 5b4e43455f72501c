package controller

import (
	"strength-coach-be/internal/dto"
	"strength-coach-be/internal/pkg/serverutils"
	"strength-coach-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReminderController interface {
	RegisterRoutes(r fiber.Router)
	Enable(ctx *fiber.Ctx) error
	Disable(ctx *fiber.Ctx) error
	Reconfigure(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type reminderController struct {
	reminderService service.IReminderService
}

func NewReminderController(reminderService service.IReminderService) IReminderController {
	return &reminderController{
		reminderService: reminderService,
	}
}

func (c *reminderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reminder/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("enable", c.Enable)
	h.Post("disable", c.Disable)
	h.Patch("", c.Reconfigure)
	h.Get("status/:chat_id", c.Status)
}

func (c *reminderController) Enable(ctx *fiber.Ctx) error {
	var req dto.EnableReminderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reminderService.Enable(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reminders enabled", res))
}

func (c *reminderController) Disable(ctx *fiber.Ctx) error {
	var req dto.DisableReminderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reminderService.Disable(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reminders disabled", res))
}

func (c *reminderController) Reconfigure(ctx *fiber.Ctx) error {
	var req dto.ReconfigureReminderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reminderService.Reconfigure(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reminder updated", res))
}

func (c *reminderController) Status(ctx *fiber.Ctx) error {
	chatID := ctx.Params("chat_id")
	if chatID == "" {
		return serverutils.NewBadRequestError("chat_id is required")
	}

	res, err := c.reminderService.Status(ctx.Context(), chatID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reminder status", res))
}
