package service_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/domain"
)

type logEntry struct {
	level   string
	ctx     context.Context
	message string
}

type logSpy struct {
	lock    sync.Mutex
	entries []logEntry
}

func (s *logSpy) add(level string, ctx context.Context, message any) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.entries = append(s.entries, logEntry{level: level, ctx: ctx, message: fmt.Sprint(message)})
}

func (s *logSpy) Error(ctx context.Context, message any, _ ...log.Field) {
	s.add("error", ctx, message)
}

func (s *logSpy) Warn(ctx context.Context, message any, _ ...log.Field) {
	s.add("warn", ctx, message)
}

func (s *logSpy) Info(ctx context.Context, message any, _ ...log.Field) {
	s.add("info", ctx, message)
}

func (s *logSpy) Debug(ctx context.Context, message any, _ ...log.Field) {
	s.add("debug", ctx, message)
}

func (s *logSpy) Entries(level string) []logEntry {
	s.lock.Lock()
	defer s.lock.Unlock()
	result := make([]logEntry, 0)
	for _, entry := range s.entries {
		if entry.level == level {
			result = append(result, entry)
		}
	}
	return result
}

type sentMessage struct {
	chatId int64
	text   string
}

type senderSpy struct {
	lock     sync.Mutex
	messages []sentMessage
	err      error
}

func (s *senderSpy) SendMessage(_ context.Context, chatId int64, text string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.messages = append(s.messages, sentMessage{chatId: chatId, text: text})
	return s.err
}

func (s *senderSpy) Messages() []sentMessage {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]sentMessage(nil), s.messages...)
}

type handlerSpy struct {
	calls atomic.Int32
	reply string
}

func (h *handlerSpy) Handle(_ context.Context, _ domain.Sender, _ domain.Arguments) (string, error) {
	h.calls.Add(1)
	return h.reply, nil
}

func handlersOf(handler domain.Handler) domain.Handlers {
	return domain.Handlers{
		Start:     handler,
		Help:      handler,
		Link:      handler,
		Status:    handler,
		Refuel:    handler,
		Rebalance: handler,
		Settings:  handler,
		Details:   handler,
		Unknown:   handler,
	}
}

type limiterSpy struct {
	calls  atomic.Int32
	result domain.AdmissionResult
}

func (l *limiterSpy) CheckAndConsume(_ context.Context, _ string) domain.AdmissionResult {
	l.calls.Add(1)
	return l.result
}

func (l *limiterSpy) Now() time.Time {
	return time.Now()
}

func textUpdate(senderId int64, text string) domain.Update {
	return domain.Update{
		UpdateId: 1,
		Message: &domain.Message{
			MessageId: 1,
			From:      &domain.User{Id: senderId, FirstName: "Ann"},
			Chat:      domain.Chat{Id: senderId, Type: "private"},
			Date:      1700000000,
			Text:      text,
		},
	}
}
