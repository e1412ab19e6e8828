package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/domain"
)

type Logger interface {
	Info(ctx context.Context, message any, fields ...log.Field)
}

// Handler replies with static texts until the business services are wired.
type Handler struct {
	logger Logger
}

func New(logger Logger) Handler {
	return Handler{
		logger: logger,
	}
}

func (h Handler) Set() domain.Handlers {
	return domain.Handlers{
		Start:     h.static("/start", startText),
		Help:      h.static("/help", helpText),
		Link:      h.static("/link", linkText),
		Status:    h.static("/status", statusText),
		Refuel:    h.static("/refuel", refuelText),
		Rebalance: domain.HandlerFunc(h.Rebalance),
		Settings:  h.static("/settings", settingsText),
		Details:   h.static("details", detailsText),
		Unknown:   h.static("unknown", unknownText),
	}
}

func (h Handler) Rebalance(ctx context.Context, sender domain.Sender, args domain.Arguments) (string, error) {
	assetType := args.String(domain.ArgAssetType)
	target := args.Float(domain.ArgTargetPercentage)
	h.logger.Info(ctx, "handling /rebalance command",
		log.String("senderId", sender.Id),
		log.String("assetType", assetType),
		log.Any("targetPercentage", target),
	)

	return fmt.Sprintf(rebalanceText,
		escapeMarkdown(assetType), formatPercent(target),
		formatPercent(target), formatPercent(target*10), // nolint:mnd
		formatPercent(100-target), formatPercent((100-target)*10), // nolint:mnd
	), nil
}

// nolint:ireturn
func (h Handler) static(command string, text string) domain.Handler {
	return domain.HandlerFunc(func(ctx context.Context, sender domain.Sender, args domain.Arguments) (string, error) {
		h.logger.Info(ctx, fmt.Sprintf("handling %s command", command), log.String("senderId", sender.Id))
		return text, nil
	})
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%g", value)
}

var markdownEscaper = strings.NewReplacer( // nolint:gochecknoglobals
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// escapeMarkdown makes user supplied text safe for the Markdown parse mode.
func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}
