package routes

import (
	"github.com/gofiber/fiber/v2"

	"postboard/internal/handlers"
	"postboard/internal/middleware"
	"postboard/services"
)

func PostRoutes(app *fiber.App, svc *services.PostService) {
	posts := app.Group("/posts", middleware.RequireAuth())

	posts.Post("/", handlers.CreatePostHandler(svc))
	posts.Get("/", handlers.GetPostsHandler(svc))

	posts.Put("/like/:postId", handlers.LikePostHandler(svc))
	posts.Put("/unlike/:postId", handlers.UnlikePostHandler(svc))

	posts.Put("/comment/:postId", handlers.AddCommentHandler(svc))
	posts.Delete("/comment/:postId/:commentId", handlers.DeleteCommentHandler(svc))

	posts.Get("/:postId", handlers.GetIndividualPostHandler(svc))
	posts.Delete("/:postId", handlers.DeletePostHandler(svc))
}
