// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"localnotes/internal/notes/adapters/http/dto"
	"localnotes/internal/notes/adapters/http/middleware"
	"localnotes/internal/notes/adapters/http/notes"
	"localnotes/internal/notes/ports/services"
	"localnotes/pkg/logger"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, notesService services.NoteService, log *logger.Logger) {
	notesHandler := notes.NewHandler(notesService)

	// Middleware для всех запросов.
	app.Use(middleware.NewActionMiddleware(log))
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API версии 1.
	notesRoutes := app.Group("/api/v1/notes")
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Post("/sort", notesHandler.SortNotes)
	notesRoutes.Get("/:note_id", notesHandler.GetNote)
	notesRoutes.Put("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Route not found",
		})
	})
}
