package handlers

import (
	"github.com/gofiber/fiber/v2"

	"postboard/internal/middleware"
	"postboard/services"
)

// LikePostHandler godoc
// @Summary      Like a post
// @Description  Add the caller's like; liking twice is rejected
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path  string  true  "Post ID (hex)"
// @Success      200  {array}   model.Like
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/like/{postId} [put]
func LikePostHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		likes, err := svc.Like(ctx, c.Params("postId"), actor)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(likes)
	}
}

// UnlikePostHandler godoc
// @Summary      Unlike a post
// @Description  Remove the caller's like; unliking without one is rejected
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path  string  true  "Post ID (hex)"
// @Success      200  {array}   model.Like
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/unlike/{postId} [put]
func UnlikePostHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		likes, err := svc.Unlike(ctx, c.Params("postId"), actor)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(likes)
	}
}
