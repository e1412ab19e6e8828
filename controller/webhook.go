package controller

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/domain"
	"shift-copilot-bot/httperrors"
)

const (
	SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"
)

type Dispatcher interface {
	Handle(ctx context.Context, event domain.Event) domain.DispatchOutcome
}

type Logger interface {
	Error(ctx context.Context, message any, fields ...log.Field)
	Warn(ctx context.Context, message any, fields ...log.Field)
}

type Webhook struct {
	dispatcher     Dispatcher
	maxRequestBody int64
	logger         Logger
}

func NewWebhook(dispatcher Dispatcher, maxRequestBody int64, logger Logger) Webhook {
	return Webhook{
		dispatcher:     dispatcher,
		maxRequestBody: maxRequestBody,
		logger:         logger,
	}
}

// ServeHTTP acknowledges every authenticated delivery with 200 so Telegram does not redeliver it.
// A body that cannot be decoded is treated as an update without a message.
func (c Webhook) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	event := domain.Event{
		SecretToken: r.Header.Get(SecretTokenHeader),
	}
	body := http.MaxBytesReader(w, r.Body, c.maxRequestBody)
	err := json.NewDecoder(body).Decode(&event.Update)
	if err != nil && !errors.Is(err, io.EOF) {
		c.logger.Warn(r.Context(), errors.WithMessage(err, "webhook: decode update"))
		event.Update = domain.Update{}
	}

	// the reply must go out even if Telegram drops the connection
	outcome := c.dispatcher.Handle(context.WithoutCancel(r.Context()), event)
	if !outcome.Acknowledged() {
		reason := "secret token mismatch"
		if event.SecretToken == "" {
			reason = "secret token header missing"
		}
		httpErr := httperrors.New(
			http.StatusUnauthorized,
			"unauthorized",
			errors.Errorf("webhook: %s", reason),
		)
		httpErr.WithDetails(reason)
		c.writeError(r.Context(), w, httpErr)
		return
	}

	c.writeJson(r.Context(), w, http.StatusOK, map[string]any{"ok": true})
}

func (c Webhook) writeError(ctx context.Context, w http.ResponseWriter, httpErr httperrors.HttpError) {
	err := httpErr.WriteError(w)
	if err != nil {
		c.logger.Error(ctx, errors.WithMessage(err, "webhook: write error response"))
	}
}

func (c Webhook) writeJson(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		c.logger.Error(ctx, errors.WithMessage(err, "webhook: write response"))
	}
}
