package controller

import (
	"ai-brainstorm-be/internal/dto"
	"ai-brainstorm-be/internal/pkg/serverutils"
	"ai-brainstorm-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	SuggestFeatures(ctx *fiber.Ctx) error
	SuggestFromInfo(ctx *fiber.Ctx) error
	ListSuggestions(ctx *fiber.Ctx) error
	AcceptSuggestion(ctx *fiber.Ctx) error
	RejectSuggestion(ctx *fiber.Ctx) error
	EnhanceDescription(ctx *fiber.Ctx) error
	GenerateTags(ctx *fiber.Ctx) error
	AnalyzeBranching(ctx *fiber.Ctx) error
}

type aiController struct {
	aiService service.IAiService
}

func NewAiController(aiService service.IAiService) IAiController {
	return &aiController{
		aiService: aiService,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("project/:projectId/suggest-features", c.SuggestFeatures)
	h.Post("project/:projectId/suggest-features-from-info", c.SuggestFromInfo)
	h.Get("project/:projectId/suggestions", c.ListSuggestions)
	h.Post("project/:projectId/analyze-branching", c.AnalyzeBranching)
	h.Post("suggestion/:id/accept", c.AcceptSuggestion)
	h.Delete("suggestion/:id", c.RejectSuggestion)
	h.Post("enhance-description", c.EnhanceDescription)
	h.Post("generate-tags", c.GenerateTags)
}

func (c *aiController) SuggestFeatures(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	projectId, err := uuid.Parse(ctx.Params("projectId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid project id")
	}

	var req dto.SuggestFeaturesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ProjectId = projectId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.SuggestFeatures(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate suggestions", res))
}

func (c *aiController) SuggestFromInfo(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	projectId, err := uuid.Parse(ctx.Params("projectId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid project id")
	}

	var req dto.SuggestFromInfoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ProjectId = projectId

	res, err := c.aiService.SuggestFromInfo(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate project suggestions", res))
}

func (c *aiController) ListSuggestions(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	projectId, err := uuid.Parse(ctx.Params("projectId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid project id")
	}

	res, err := c.aiService.ListSuggestions(ctx.Context(), userId, projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list suggestions", res))
}

func (c *aiController) AcceptSuggestion(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid suggestion id")
	}

	res, err := c.aiService.AcceptSuggestion(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success accept suggestion", res))
}

func (c *aiController) RejectSuggestion(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid suggestion id")
	}

	if err := c.aiService.RejectSuggestion(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reject suggestion", fiber.Map{}))
}

func (c *aiController) EnhanceDescription(ctx *fiber.Ctx) error {
	var req dto.EnhanceDescriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.EnhanceDescription(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success enhance description", res))
}

func (c *aiController) GenerateTags(ctx *fiber.Ctx) error {
	var req dto.GenerateTagsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.GenerateTags(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate tags", res))
}

func (c *aiController) AnalyzeBranching(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	projectId, err := uuid.Parse(ctx.Params("projectId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid project id")
	}

	var req dto.AnalyzeBranchingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ProjectId = projectId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.AnalyzeBranching(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze branching", res))
}
