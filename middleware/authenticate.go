package middleware

import (
	"crypto/subtle"

	"shift-copilot-bot/domain"
	"shift-copilot-bot/request"
)

func Authenticate(secret string, logger LogWriter) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			token := ctx.Event().SecretToken
			if secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				if token == "" {
					logger.Warn(ctx.Context(), "authenticate: webhook secret token required")
				} else {
					logger.Warn(ctx.Context(), "authenticate: invalid webhook secret token")
				}
				ctx.Fail(domain.FailureUnauthorized, "")
				return nil
			}

			return next.Handle(ctx)
		})
	}
}
