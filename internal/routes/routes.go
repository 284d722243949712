package routes

import (
	"streaming-catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, authHandler *handlers.AuthHandler, catalogHandler *handlers.CatalogHandler, userHandler *handlers.UserHandler) {
	// Auth
	app.Post("/login", authHandler.Login)
	app.Post("/register", authHandler.Register)

	// Catalog
	app.Get("/videos", catalogHandler.GetVideos)
	app.Get("/videos/category/:categoryId", catalogHandler.GetVideosByCategory)
	app.Get("/categories", catalogHandler.GetCategories)

	series := app.Group("/series")
	{
		series.Get("/", catalogHandler.GetSeries)
		series.Get("/summary", catalogHandler.GetSeriesSummaries)
		series.Get("/:id", catalogHandler.GetSeriesDetails)
	}

	movies := app.Group("/movies")
	{
		movies.Get("/", catalogHandler.GetMovies)
		movies.Get("/:id", catalogHandler.GetMovieByID)
		movies.Get("/:id/stream", catalogHandler.GetMovieStream)
	}

	app.Get("/episodes/:id/stream", catalogHandler.GetEpisodeStream)

	// Users and bookmarks
	app.Get("/user/:id", userHandler.GetUser)
	app.Put("/user/:id", userHandler.UpdateUser)
	app.Post("/guardadas", userHandler.SaveGuardada)
	app.Get("/guardadas/:userId", userHandler.GetGuardadas)
}
