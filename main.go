package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"postboard/bootstrap"
	"postboard/configs"
	"postboard/database"
	_ "postboard/docs"
	"postboard/internal/middleware"
	"postboard/internal/repository"
	"postboard/internal/routes"
	"postboard/log"
	"postboard/services"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Warn.Println("No .env file found, using system environment variables")
	}
}

// @title        Postboard API
// @version      1.0
// @description  Posts with embedded likes and comments.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := configs.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Error.Fatal("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Error.Fatalf("ensure indexes failed: %v", err)
	}

	posts := repository.NewMongoPostStore(db)
	users := repository.NewMongoUserStore(db)
	postSvc := services.NewPostService(posts, users)
	authSvc := services.NewAuthService(users, []byte(cfg.JWTSecret))

	app := fiber.New()

	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.JWTAuth([]byte(cfg.JWTSecret)))

	routes.UserRoutes(app, authSvc)
	routes.PostRoutes(app, postSvc)

	log.Info.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error.Fatal(err)
	}
}
