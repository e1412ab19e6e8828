package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"shift-copilot-bot/domain"
	"shift-copilot-bot/parser"
)

func TestParsePlainCommands(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cases := []struct {
		text     string
		expected domain.CommandKind
	}{
		{text: "/start", expected: domain.CommandStart},
		{text: "/START", expected: domain.CommandStart},
		{text: "  /help \n", expected: domain.CommandHelp},
		{text: "/link", expected: domain.CommandLink},
		{text: "/Status", expected: domain.CommandStatus},
		{text: "/refuel", expected: domain.CommandRefuel},
		{text: "/settings", expected: domain.CommandSettings},
		{text: "details", expected: domain.CommandDetails},
		{text: "Details", expected: domain.CommandDetails},
		{text: "/details", expected: domain.CommandUnknown},
		{text: "/start now", expected: domain.CommandUnknown},
		{text: "/rebalance", expected: domain.CommandUnknown},
		{text: "", expected: domain.CommandUnknown},
	}
	for _, c := range cases {
		cmd := parser.Parse(c.text)
		require.EqualValues(c.expected, cmd.Kind, c.text)
		require.EqualValues(strings.TrimSpace(c.text), cmd.RawText, c.text)
		require.Empty(cmd.Args, c.text)
	}
}

func TestParseRebalance(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cmd := parser.Parse("/rebalance stables 30")
	require.EqualValues(domain.CommandRebalance, cmd.Kind)
	require.EqualValues("stables", cmd.Args.String(domain.ArgAssetType))
	require.InDelta(30.0, cmd.Args.Float(domain.ArgTargetPercentage), 0)
	require.EqualValues("/rebalance stables 30", cmd.RawText)

	cmd = parser.Parse("  /REBALANCE   ETH\t12.5%  ")
	require.EqualValues(domain.CommandRebalance, cmd.Kind)
	require.EqualValues("eth", cmd.Args.String(domain.ArgAssetType))
	require.InDelta(12.5, cmd.Args.Float(domain.ArgTargetPercentage), 0)
	require.EqualValues("/REBALANCE   ETH\t12.5%", cmd.RawText)
}

func TestParseUnknown(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cases := []string{
		"/rebalance stables abc",
		"/rebalance stables",
		"/rebalance stables 30 now",
		"/rebalance stables -5",
		"/rebalance stables 1e5",
		"/rebalance " + strings.Repeat("x", 3) + " " + strings.Repeat("9", 400),
		"hello world",
	}
	for _, text := range cases {
		cmd := parser.Parse(text)
		require.EqualValues(domain.CommandUnknown, cmd.Kind, text)
		require.EqualValues(text, cmd.RawText, text)
		require.False(parser.IsValid(text), text)
	}
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	inputs := []string{
		"/start", " /help", "/link ", "/status", "/refuel", "/settings", "details",
		"/rebalance eth 50%", "hello world", "", "   ",
	}
	for _, input := range inputs {
		first := parser.Parse(input)
		second := parser.Parse(first.RawText)
		require.EqualValues(first, second, input)
	}
}

func TestToIntent(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	intent, ok := parser.ToIntent(parser.Parse("/refuel"))
	require.True(ok)
	require.EqualValues(domain.ActionRefuel, intent.Type)
	require.False(intent.RequiresConfirmation)

	intent, ok = parser.ToIntent(parser.Parse("/rebalance stables 30"))
	require.True(ok)
	require.EqualValues(domain.ActionRebalance, intent.Type)
	require.True(intent.RequiresConfirmation)
	require.EqualValues("stables", intent.Params[domain.ArgAssetType])
	require.EqualValues(30.0, intent.Params[domain.ArgTargetPercentage])

	_, ok = parser.ToIntent(parser.Parse("/status"))
	require.False(ok)
}
