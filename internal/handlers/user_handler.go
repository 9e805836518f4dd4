package handlers

import (
	"github.com/gofiber/fiber/v2"

	"postboard/dto"
	"postboard/internal/middleware"
	"postboard/services"
)

// RegisterHandler godoc
// @Summary      Register a user
// @Description  Create an account with a bcrypt-hashed password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.RegisterDTO  true  "Registration payload"
// @Success      201   {object}  model.User
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /users/register [post]
func RegisterHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegisterDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		user, err := svc.Register(ctx, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Description  Verify credentials and issue a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginDTO  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /users/login [post]
func LoginHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		token, err := svc.Login(ctx, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.TokenResponse{Token: token})
	}
}

// CurrentUserHandler godoc
// @Summary      Current user
// @Description  Return the authenticated caller's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.User
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/current [get]
func CurrentUserHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := middleware.UIDFromLocals(c)
		if err != nil {
			return err
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		user, err := svc.Current(ctx, actor)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(user)
	}
}
