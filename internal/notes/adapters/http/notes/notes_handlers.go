// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"localnotes/internal/notes/adapters/http/dto"
	"localnotes/internal/notes/adapters/http/middleware"
	"localnotes/internal/notes/app"
	"localnotes/internal/notes/domain/entities"
	"localnotes/internal/notes/ports/services"
	"localnotes/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"
	LogHandlerSortNotes  = "handling sort notes request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgBlankNote          = "title and text must not be blank"
	ErrMsgNoteNotFound       = "note not found"
	ErrMsgUnknownCriterion   = "unknown sort criterion"
	ErrMsgInternal           = "Internal server error"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notesService services.NoteService
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notesService services.NoteService) *Handler {
	return &Handler{
		notesService: notesService,
	}
}

// ListNotes возвращает весь список в текущем порядке.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	actionCtx := middleware.ActionContext(ctx)
	logger.Log(actionCtx).Debug(actionCtx, LogHandlerListNotes, zap.String("handler", "Handler.ListNotes"))

	return sendJSON(ctx, fiber.StatusOK, dto.FromEntities(h.notesService.List(actionCtx)))
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	actionCtx := middleware.ActionContext(ctx)
	log := logger.Log(actionCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(actionCtx, LogHandlerGetNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	note, err := h.notesService.Get(actionCtx, noteID)
	if err != nil {
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.NoteResponse{Note: dto.FromEntity(note)})
}

// CreateNote добавляет заметку в начало списка.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	actionCtx := middleware.ActionContext(ctx)
	log := logger.Log(actionCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(actionCtx, LogHandlerCreateNote)

	var req dto.NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Warn(actionCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	notes, err := h.notesService.Add(actionCtx, req.Title, req.Text)
	if err != nil {
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusCreated, dto.FromEntities(notes))
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	actionCtx := middleware.ActionContext(ctx)
	log := logger.Log(actionCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(actionCtx, LogHandlerUpdateNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	var req dto.NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Warn(actionCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	notes, err := h.notesService.Edit(actionCtx, noteID, req.Title, req.Text)
	if err != nil {
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.FromEntities(notes))
}

// DeleteNote обрабатывает запрос на удаление заметки. Отсутствующий id не является ошибкой.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	actionCtx := middleware.ActionContext(ctx)
	log := logger.Log(actionCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(actionCtx, LogHandlerDeleteNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	if _, err := h.notesService.Delete(actionCtx, noteID); err != nil {
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// SortNotes переупорядочивает список по ?by=title|createDate|editDate.
func (h *Handler) SortNotes(ctx fiber.Ctx) error {
	actionCtx := middleware.ActionContext(ctx)
	log := logger.Log(actionCtx).With(zap.String("handler", "Handler.SortNotes"))
	log.Debug(actionCtx, LogHandlerSortNotes)

	notes, err := h.notesService.Sort(actionCtx, entities.SortCriterion(ctx.Query("by")))
	if err != nil {
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.FromEntities(notes))
}

// handleError переводит ошибки бизнес-логики в HTTP-статусы.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrBlankNote):
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgBlankNote)
	case errors.Is(err, app.ErrNoteNotFound):
		return sendError(ctx, fiber.StatusNotFound, ErrMsgNoteNotFound)
	case errors.Is(err, app.ErrUnknownCriterion):
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgUnknownCriterion)
	}

	actionCtx := middleware.ActionContext(ctx)
	logger.Log(actionCtx).Error(actionCtx, "request failed", zap.Error(err))
	return sendError(ctx, fiber.StatusInternalServerError, ErrMsgInternal)
}

func sendError(ctx fiber.Ctx, status int, message string) error {
	return sendJSON(ctx, status, dto.ErrorResponse{Error: message})
}

func sendJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
