package request

import (
	"context"
	"time"

	"shift-copilot-bot/domain"
)

// Context carries one webhook delivery through the middleware chain.
type Context struct {
	ctx       context.Context
	event     domain.Event
	startedAt time.Time

	message *domain.InboundMessage
	command *domain.ParsedCommand

	outcome domain.DispatchOutcome
}

func NewContext(ctx context.Context, event domain.Event, startedAt time.Time) *Context {
	return &Context{
		ctx:       ctx,
		event:     event,
		startedAt: startedAt,
	}
}

func (c *Context) Context() context.Context {
	return c.ctx
}

func (c *Context) SetContext(ctx context.Context) {
	c.ctx = ctx
}

func (c *Context) Event() domain.Event {
	return c.event
}

func (c *Context) StartedAt() time.Time {
	return c.startedAt
}

func (c *Context) Elapsed() time.Duration {
	return time.Since(c.startedAt)
}

func (c *Context) SetMessage(message domain.InboundMessage) {
	c.message = &message
}

func (c *Context) GetMessage() (domain.InboundMessage, error) {
	if c.message == nil {
		return domain.InboundMessage{}, domain.ErrMessageNotExtracted
	}
	return *c.message, nil
}

func (c *Context) SetCommand(command domain.ParsedCommand) {
	c.command = &command
}

// CommandKind is empty until the command has been parsed.
func (c *Context) CommandKind() domain.CommandKind {
	if c.command == nil {
		return ""
	}
	return c.command.Kind
}

func (c *Context) SetCorrelationId(id string) {
	c.outcome.CorrelationId = id
}

func (c *Context) Reply(text string) {
	c.outcome.ReplyText = text
}

func (c *Context) Fail(kind domain.FailureKind, text string) {
	c.outcome.FailureKind = kind
	c.outcome.ReplyText = text
}

func (c *Context) MarkFailure(kind domain.FailureKind) {
	c.outcome.FailureKind = kind
}

func (c *Context) Outcome() domain.DispatchOutcome {
	return c.outcome
}
