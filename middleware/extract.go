package middleware

import (
	"strconv"
	"time"

	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/domain"
	"shift-copilot-bot/request"
)

// Extract derives sender identity from the update. Updates without a text
// message are acknowledged without any further processing.
func Extract(logger LogWriter) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			update := ctx.Event().Update
			if update.Message == nil || update.Message.Text == "" {
				return nil
			}

			message := update.Message
			senderId := strconv.FormatInt(message.Chat.Id, 10)
			username := ""
			if message.From != nil {
				senderId = strconv.FormatInt(message.From.Id, 10)
				username = message.From.Username
			}

			ctx.SetMessage(domain.InboundMessage{
				UpdateId:   update.UpdateId,
				SenderId:   senderId,
				ChatId:     message.Chat.Id,
				Username:   username,
				Text:       message.Text,
				ReceivedAt: time.Unix(message.Date, 0),
			})
			ctx.SetContext(log.ToContext(ctx.Context(), log.String("userId", senderId)))
			logger.Debug(ctx.Context(), "update received", log.Int64("updateId", update.UpdateId))

			return next.Handle(ctx)
		})
	}
}
