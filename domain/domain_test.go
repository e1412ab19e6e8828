package domain_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"shift-copilot-bot/domain"
)

func TestRetryAfterSeconds(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	now := time.Now()
	cases := []struct {
		resetIn  time.Duration
		expected int64
	}{
		{resetIn: 60 * time.Second, expected: 60},
		{resetIn: 59*time.Second + time.Millisecond, expected: 60},
		{resetIn: 1500 * time.Millisecond, expected: 2},
		{resetIn: time.Millisecond, expected: 1},
		{resetIn: 0, expected: 0},
		{resetIn: -time.Second, expected: 0},
	}
	for _, c := range cases {
		result := domain.AdmissionResult{ResetAt: now.Add(c.resetIn)}
		require.EqualValues(c.expected, result.RetryAfterSeconds(now), c.resetIn.String())
	}
}

func TestHandlersRoute(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	named := func(name string) domain.Handler {
		return domain.HandlerFunc(func(ctx context.Context, sender domain.Sender, args domain.Arguments) (string, error) {
			return name, nil
		})
	}
	handlers := domain.Handlers{
		Start:     named("start"),
		Help:      named("help"),
		Link:      named("link"),
		Status:    named("status"),
		Refuel:    named("refuel"),
		Rebalance: named("rebalance"),
		Settings:  named("settings"),
		Details:   named("details"),
		Unknown:   named("unknown"),
	}
	require.NoError(handlers.Validate())

	kinds := []domain.CommandKind{
		domain.CommandStart, domain.CommandHelp, domain.CommandLink, domain.CommandStatus,
		domain.CommandRefuel, domain.CommandRebalance, domain.CommandSettings,
		domain.CommandDetails, domain.CommandUnknown,
	}
	for _, kind := range kinds {
		reply, err := handlers.Route(kind).Handle(context.Background(), domain.Sender{}, nil)
		require.NoError(err)
		require.EqualValues(kind, reply)
	}

	reply, err := handlers.Route("something-else").Handle(context.Background(), domain.Sender{}, nil)
	require.NoError(err)
	require.EqualValues("unknown", reply)

	handlers.Details = nil
	require.Error(handlers.Validate())
}
