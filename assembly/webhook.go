package assembly

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/conf"
	"shift-copilot-bot/transport"
)

const (
	webhookCallTimeout = 10 * time.Second
)

// WebhookRegistration tracks the webhook this instance registered itself.
// A webhook registered out of band is never deleted.
type WebhookRegistration struct {
	logger *log.Adapter

	lock  sync.Mutex
	owned *transport.Telegram
}

func NewWebhookRegistration(logger *log.Adapter) *WebhookRegistration {
	return &WebhookRegistration{
		logger: logger,
	}
}

func (w *WebhookRegistration) Register(ctx context.Context, bot transport.Telegram, config conf.Telegram) {
	if config.WebhookUrl == "" {
		w.lock.Lock()
		w.owned = nil
		w.lock.Unlock()
		return
	}

	ctx, cancel := context.WithTimeout(ctx, webhookCallTimeout)
	defer cancel()
	err := bot.SetWebhook(ctx, config.WebhookUrl, config.WebhookSecret)
	if err != nil {
		w.logger.Error(ctx, errors.WithMessage(err, "register webhook"))
		return
	}

	w.lock.Lock()
	w.owned = &bot
	w.lock.Unlock()
	w.logger.Info(ctx, "webhook registered", log.String("url", config.WebhookUrl))
}

func (w *WebhookRegistration) Unregister(ctx context.Context) error {
	w.lock.Lock()
	bot := w.owned
	w.owned = nil
	w.lock.Unlock()
	if bot == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, webhookCallTimeout)
	defer cancel()
	err := bot.DeleteWebhook(ctx)
	if err != nil {
		return errors.WithMessage(err, "delete webhook")
	}
	return nil
}
