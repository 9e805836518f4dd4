package handlers

import (
	"github.com/gofiber/fiber/v2"

	"postboard/dto"
	"postboard/internal/middleware"
	"postboard/services"
)

// AddCommentHandler godoc
// @Summary      Comment on a post
// @Description  Prepend a comment carrying the caller's current name and avatar
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path  string                true  "Post ID (hex)"
// @Param        data    body  dto.CreateCommentReq  true  "Comment payload"
// @Success      200  {array}   model.Comment
// @Failure      400  {object}  dto.ValidationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/comment/{postId} [put]
func AddCommentHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}

		var body dto.CreateCommentReq
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		comments, err := svc.AddComment(ctx, c.Params("postId"), actor, body.Text)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(comments)
	}
}

// DeleteCommentHandler godoc
// @Summary      Delete a comment
// @Description  Remove the caller's own comment from a post, returning the updated post
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        postId     path  string  true  "Post ID (hex)"
// @Param        commentId  path  string  true  "Comment ID (hex)"
// @Success      200  {object}  model.Post
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/comment/{postId}/{commentId} [delete]
func DeleteCommentHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		post, err := svc.DeleteComment(ctx, c.Params("postId"), c.Params("commentId"), actor)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(post)
	}
}
