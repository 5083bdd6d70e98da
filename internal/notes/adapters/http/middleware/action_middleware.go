// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"localnotes/pkg/logger"
)

// Ключи и заголовки, используемые промежуточным ПО.
const (
	LocalsActionContext = "actionContext"
	HeaderActionID      = "X-Action-ID"
)

// NewActionMiddleware присваивает каждому запросу action id и кладет контекст с логгером в Locals.
// X-Action-ID клиента принимается, только если это UUID, иначе генерируется новый.
func NewActionMiddleware(log *logger.Logger) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		actionCtx := logger.NewActionContext(ctx.Context(), clientActionID(ctx))
		if log != nil {
			actionCtx = logger.NewContext(actionCtx, log)
		}

		id, _ := logger.GetActionID(actionCtx)
		ctx.Set(HeaderActionID, id)
		ctx.Locals(LocalsActionContext, actionCtx)

		return ctx.Next()
	}
}

func clientActionID(ctx fiber.Ctx) string {
	id, err := uuid.Parse(ctx.Get(HeaderActionID))
	if err != nil {
		return ""
	}
	return id.String()
}

// ActionContext возвращает контекст действия, либо контекст запроса, если middleware не подключен.
func ActionContext(ctx fiber.Ctx) context.Context {
	if actionCtx, ok := ctx.Locals(LocalsActionContext).(context.Context); ok {
		return actionCtx
	}
	return ctx.Context()
}
