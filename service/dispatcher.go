package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"shift-copilot-bot/conf"
	"shift-copilot-bot/domain"
	"shift-copilot-bot/middleware"
	"shift-copilot-bot/parser"
	"shift-copilot-bot/request"
)

type Dispatcher struct {
	root   middleware.Handler
	logger Logger
}

// NewDispatcher builds the intake pipeline:
// authenticate -> correlate -> log -> reply -> recover errors -> extract -> throttle -> route.
func NewDispatcher(
	config conf.Remote,
	limiter middleware.RateLimiter,
	handlers domain.Handlers,
	sender middleware.Sender,
	logger Logger,
) (Dispatcher, error) {
	err := handlers.Validate()
	if err != nil {
		return Dispatcher{}, errors.WithMessage(err, "validate handlers")
	}

	root := middleware.Chain(
		middleware.Router(parser.Parse, handlers, config.Handler.GetTimeout(), logger),
		middleware.Authenticate(config.Telegram.WebhookSecret, logger),
		middleware.RequestId(NewActionId),
		middleware.Logger(logger),
		middleware.Reply(sender, config.Telegram.GetSendTimeout(), logger),
		middleware.ErrorHandler(logger),
		middleware.Extract(logger),
		middleware.Throttling(limiter, logger),
	)
	return Dispatcher{
		root:   root,
		logger: logger,
	}, nil
}

// Handle runs one webhook delivery through the pipeline.
func (d Dispatcher) Handle(ctx context.Context, event domain.Event) domain.DispatchOutcome {
	reqCtx := request.NewContext(ctx, event, time.Now())
	err := d.root.Handle(reqCtx)
	if err != nil {
		d.logger.Error(reqCtx.Context(), errors.WithMessage(err, "uncaught error"))
		reqCtx.Fail(domain.FailureHandler, middleware.GenericFailureReply)
	}
	return reqCtx.Outcome()
}
