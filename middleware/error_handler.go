package middleware

import (
	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/domain"
	"shift-copilot-bot/request"
)

const (
	GenericFailureReply = "❌ Something went wrong while processing your command. Please try again later."
)

func ErrorHandler(logger LogWriter) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			err := next.Handle(ctx)
			if err == nil {
				return nil
			}

			logger.Error(ctx.Context(), err,
				log.String("failureKind", string(domain.FailureHandler)),
				log.String("command", string(ctx.CommandKind())),
				log.Int64("elapsedMs", ctx.Elapsed().Milliseconds()),
			)
			ctx.Fail(domain.FailureHandler, GenericFailureReply)

			return nil
		})
	}
}
