package handlers

import (
	"github.com/gofiber/fiber/v2"

	"postboard/dto"
	"postboard/internal/middleware"
	"postboard/services"
)

// CreatePostHandler godoc
// @Summary      Create a post
// @Description  Create a new post; the author's name and avatar are copied in at creation time
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreatePostDTO  true  "Post payload"
// @Success      201   {object}  model.Post
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /posts [post]
func CreatePostHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}

		var body dto.CreatePostDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		post, err := svc.Create(ctx, actor, body.Text)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}

// GetPostsHandler godoc
// @Summary      List all posts
// @Description  Return every post, newest first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Post
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts [get]
func GetPostsHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx(c)
		defer cancel()

		posts, err := svc.List(ctx)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(posts)
	}
}

// GetIndividualPostHandler godoc
// @Summary      Get a post
// @Description  Return one post with its likes and comments
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path  string  true  "Post ID (hex)"
// @Success      200  {object}  model.Post
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/{postId} [get]
func GetIndividualPostHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx(c)
		defer cancel()

		post, err := svc.Get(ctx, c.Params("postId"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(post)
	}
}

// DeletePostHandler godoc
// @Summary      Delete a post
// @Description  Permanently remove a post; only its author may do this
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path  string  true  "Post ID (hex)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/{postId} [delete]
func DeletePostHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		if err := svc.Delete(ctx, c.Params("postId"), actor); err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "post deleted"})
	}
}
