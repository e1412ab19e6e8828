package middleware

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/domain"
	"shift-copilot-bot/request"
)

type CommandParser func(text string) domain.ParsedCommand

type HandlerRouter interface {
	Route(kind domain.CommandKind) domain.Handler
}

// Router parses the message text and invokes the matching handler
// within the given timeout.
// nolint:ireturn
func Router(parse CommandParser, handlers HandlerRouter, timeout time.Duration, logger LogWriter) Handler {
	return HandlerFunc(func(ctx *request.Context) error {
		message, err := ctx.GetMessage()
		if err != nil {
			return errors.WithMessage(err, "router: get message")
		}

		command := parse(message.Text)
		ctx.SetCommand(command)

		reply, err := invoke(ctx.Context(), timeout, handlers.Route(command.Kind), message.Sender(), command.Args)
		if err != nil {
			return errors.WithMessagef(err, "router: handle '%s'", command.Kind)
		}

		if command.Kind == domain.CommandUnknown {
			logger.Debug(ctx.Context(), "unrecognized command", log.String("text", command.RawText))
			ctx.Fail(domain.FailureUnrecognized, reply)
			return nil
		}

		ctx.Reply(reply)
		return nil
	})
}

type handlerResult struct {
	reply string
	err   error
}

func invoke(
	ctx context.Context,
	timeout time.Duration,
	handler domain.Handler,
	sender domain.Sender,
	args domain.Arguments,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan handlerResult, 1)
	go func() {
		defer func() {
			r := recover()
			if r != nil {
				done <- handlerResult{err: errors.WithMessagef(domain.ErrHandlerPanic, "%v", r)}
			}
		}()
		reply, err := handler.Handle(ctx, sender, args)
		done <- handlerResult{reply: reply, err: err}
	}()

	select {
	case result := <-done:
		if result.err != nil {
			return "", result.err
		}
		if result.reply == "" {
			return "", errors.New("handler returned empty reply")
		}
		return result.reply, nil
	case <-ctx.Done():
		return "", errors.WithMessagef(domain.ErrHandlerTimeout, "after %s", timeout)
	}
}
