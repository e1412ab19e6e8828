package domain

import (
	"context"

	"github.com/pkg/errors"
)

type Handler interface {
	Handle(ctx context.Context, sender Sender, args Arguments) (string, error)
}

type HandlerFunc func(ctx context.Context, sender Sender, args Arguments) (string, error)

func (f HandlerFunc) Handle(ctx context.Context, sender Sender, args Arguments) (string, error) {
	return f(ctx, sender, args)
}

// Handlers maps every CommandKind to exactly one Handler.
type Handlers struct {
	Start     Handler
	Help      Handler
	Link      Handler
	Status    Handler
	Refuel    Handler
	Rebalance Handler
	Settings  Handler
	Details   Handler
	Unknown   Handler
}

func (h Handlers) Validate() error {
	handlers := map[CommandKind]Handler{
		CommandStart:     h.Start,
		CommandHelp:      h.Help,
		CommandLink:      h.Link,
		CommandStatus:    h.Status,
		CommandRefuel:    h.Refuel,
		CommandRebalance: h.Rebalance,
		CommandSettings:  h.Settings,
		CommandDetails:   h.Details,
		CommandUnknown:   h.Unknown,
	}
	for kind, handler := range handlers {
		if handler == nil {
			return errors.Errorf("handler for command '%s' is not set", kind)
		}
	}
	return nil
}

func (h Handlers) Route(kind CommandKind) Handler {
	switch kind {
	case CommandStart:
		return h.Start
	case CommandHelp:
		return h.Help
	case CommandLink:
		return h.Link
	case CommandStatus:
		return h.Status
	case CommandRefuel:
		return h.Refuel
	case CommandRebalance:
		return h.Rebalance
	case CommandSettings:
		return h.Settings
	case CommandDetails:
		return h.Details
	default:
		return h.Unknown
	}
}
