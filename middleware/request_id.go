package middleware

import (
	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/requestid"
	"shift-copilot-bot/request"
)

const (
	ActionIdLogKey = "actionId"
)

func RequestId(nextId func() string) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			actionId := nextId()
			ctx.SetCorrelationId(actionId)

			context := requestid.ToContext(ctx.Context(), actionId)
			context = log.ToContext(context, log.String(ActionIdLogKey, actionId))

			ctx.SetContext(context)
			return next.Handle(ctx)
		})
	}
}
