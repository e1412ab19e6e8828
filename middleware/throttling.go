package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/domain"
	"shift-copilot-bot/request"
)

type RateLimiter interface {
	CheckAndConsume(ctx context.Context, senderId string) domain.AdmissionResult
	Now() time.Time
}

func Throttling(limiter RateLimiter, logger LogWriter) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			message, err := ctx.GetMessage()
			if err != nil {
				return errors.WithMessage(err, "throttling: get message")
			}

			result := limiter.CheckAndConsume(ctx.Context(), message.SenderId)
			if !result.Allowed {
				wait := result.RetryAfterSeconds(limiter.Now())
				logger.Info(ctx.Context(), "rate limit has been reached", log.Int64("retryAfterSec", wait))
				ctx.Fail(
					domain.FailureThrottled,
					fmt.Sprintf("⚠️ Rate limit exceeded. Please wait %d seconds before sending more commands.", wait),
				)
				return nil
			}

			return next.Handle(ctx)
		})
	}
}
