package middleware

import (
	"context"

	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/request"
)

type Handler interface {
	Handle(ctx *request.Context) error
}

type HandlerFunc func(ctx *request.Context) error

func (f HandlerFunc) Handle(ctx *request.Context) error {
	return f(ctx)
}

type Middleware func(next Handler) Handler

type LogWriter interface {
	Error(ctx context.Context, message any, fields ...log.Field)
	Warn(ctx context.Context, message any, fields ...log.Field)
	Info(ctx context.Context, message any, fields ...log.Field)
	Debug(ctx context.Context, message any, fields ...log.Field)
}

// nolint:ireturn
func Chain(root Handler, middlewares ...Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		root = middlewares[i](root)
	}
	return root
}
