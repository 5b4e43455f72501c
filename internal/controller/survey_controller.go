package controller

import (
	"strength-coach-be/internal/dto"
	"strength-coach-be/internal/pkg/serverutils"
	"strength-coach-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISurveyController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type surveyController struct {
	surveyService service.ISurveyService
}

func NewSurveyController(surveyService service.ISurveyService) ISurveyController {
	return &surveyController{
		surveyService: surveyService,
	}
}

func (c *surveyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/survey/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("start", c.Start)
	h.Post("answer", c.Answer)
	h.Post("cancel", c.Cancel)
	h.Get("status/:chat_id", c.Status)
}

func (c *surveyController) Start(ctx *fiber.Ctx) error {
	var req dto.StartSurveyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.surveyService.Start(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Survey turn", res))
}

func (c *surveyController) Answer(ctx *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.surveyService.SubmitAnswer(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Survey turn", res))
}

func (c *surveyController) Cancel(ctx *fiber.Ctx) error {
	var req dto.CancelSurveyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.surveyService.Cancel(ctx.Context(), req.ChatId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Survey turn", res))
}

func (c *surveyController) Status(ctx *fiber.Ctx) error {
	chatID := ctx.Params("chat_id")
	if chatID == "" {
		return serverutils.NewBadRequestError("chat_id is required")
	}

	res, err := c.surveyService.Status(ctx.Context(), chatID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Survey status", res))
}
