package controller

import (
	"strength-coach-be/internal/pkg/serverutils"
	"strength-coach-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
}

func NewProfileController(profileService service.IProfileService) IProfileController {
	return &profileController{
		profileService: profileService,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":chat_id", c.Show)
	h.Delete(":chat_id", c.Reset)
}

func (c *profileController) Show(ctx *fiber.Ctx) error {
	chatID := ctx.Params("chat_id")
	if chatID == "" {
		return serverutils.NewBadRequestError("chat_id is required")
	}

	res, err := c.profileService.Get(ctx.Context(), chatID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Strength profile", res))
}

func (c *profileController) Reset(ctx *fiber.Ctx) error {
	chatID := ctx.Params("chat_id")
	if chatID == "" {
		return serverutils.NewBadRequestError("chat_id is required")
	}

	if err := c.profileService.Reset(ctx.Context(), chatID); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Profile reset", nil))
}
