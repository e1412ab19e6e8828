package middleware

import (
	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/request"
)

// Logger writes one record per update once the inner steps are done.
// Processed commands and early exits are logged at info, updates without a command at debug.
func Logger(logger LogWriter) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			err := next.Handle(ctx)

			outcome := ctx.Outcome()
			if outcome.FailureKind == "" && ctx.CommandKind() == "" {
				logger.Debug(ctx.Context(), "update acknowledged, no action",
					log.Int64("updateId", ctx.Event().Update.UpdateId),
				)
				return err
			}

			logger.Info(ctx.Context(), "command processed",
				log.String("command", string(ctx.CommandKind())),
				log.String("failureKind", string(outcome.FailureKind)),
				log.Int64("elapsedMs", ctx.Elapsed().Milliseconds()),
			)
			return err
		})
	}
}
