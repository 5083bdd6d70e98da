package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ActionID имя поля лога с идентификатором действия пользователя.
const ActionID = "action_id"

type actionIDKeyType struct{}

var actionIDKey = actionIDKeyType{}

// NewActionContext помечает контекст идентификатором действия.
// Пустой id заменяется сгенерированным.
func NewActionContext(ctx context.Context, actionID string) context.Context {
	if actionID == "" {
		actionID = GenerateActionID()
	}
	return context.WithValue(ctx, actionIDKey, actionID)
}

// GetActionID возвращает идентификатор действия из контекста.
func GetActionID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(actionIDKey).(string)
	return id, ok
}

// GenerateActionID генерирует новый идентификатор действия.
func GenerateActionID() string {
	return uuid.NewString()
}

// WithActionID возвращает копию логгера с полем action_id, если оно есть в контексте.
func (l *Logger) WithActionID(ctx context.Context) *Logger {
	if id, ok := GetActionID(ctx); ok {
		return l.With(zap.String(ActionID, id))
	}
	return l
}

func addActionID(ctx context.Context, fields []zap.Field) []zap.Field {
	id, ok := GetActionID(ctx)
	if !ok {
		return fields
	}
	return append(fields, zap.String(ActionID, id))
}
