package middleware

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/domain"
	"shift-copilot-bot/request"
)

type Sender interface {
	SendMessage(ctx context.Context, chatId int64, text string) error
}

// Reply delivers the reply text at most once. A failed send is logged and
// never retried; the update is still acknowledged.
func Reply(sender Sender, timeout time.Duration, logger LogWriter) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			err := next.Handle(ctx)
			if err != nil {
				return err
			}

			outcome := ctx.Outcome()
			if outcome.ReplyText == "" {
				return nil
			}
			message, err := ctx.GetMessage()
			if err != nil {
				return nil // nolint:nilerr
			}

			sendCtx, cancel := context.WithTimeout(ctx.Context(), timeout)
			defer cancel()
			err = sender.SendMessage(sendCtx, message.ChatId, outcome.ReplyText)
			if err != nil {
				logger.Error(ctx.Context(), errors.WithMessage(err, "reply: send message"),
					log.String("failureKind", string(domain.FailureTransportSend)),
					log.Int64("chatId", message.ChatId),
				)
				if outcome.FailureKind == domain.FailureNone {
					ctx.MarkFailure(domain.FailureTransportSend)
				}
			}

			return nil
		})
	}
}
