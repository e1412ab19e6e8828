package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"shift-copilot-bot/domain"
)

var (
	// checked in this order, first match wins
	plainCommands = []struct { // nolint:gochecknoglobals
		token string
		kind  domain.CommandKind
	}{
		{token: "/start", kind: domain.CommandStart},
		{token: "/help", kind: domain.CommandHelp},
		{token: "/link", kind: domain.CommandLink},
		{token: "/status", kind: domain.CommandStatus},
		{token: "/refuel", kind: domain.CommandRefuel},
		{token: "/settings", kind: domain.CommandSettings},
		{token: "details", kind: domain.CommandDetails},
	}

	rebalancePattern = regexp.MustCompile(`(?i)^/rebalance\s+(\w+)\s+(\d+(?:\.\d+)?)%?$`) // nolint:gochecknoglobals
)

// Parse classifies raw message text. It never fails: text that matches
// nothing yields CommandUnknown with the trimmed text preserved.
func Parse(text string) domain.ParsedCommand {
	trimmed := strings.TrimSpace(text)

	for _, cmd := range plainCommands {
		if strings.EqualFold(trimmed, cmd.token) {
			return domain.ParsedCommand{
				Kind:    cmd.kind,
				Args:    domain.Arguments{},
				RawText: trimmed,
			}
		}
	}

	rebalance, ok := parseRebalance(trimmed)
	if ok {
		return rebalance
	}

	return domain.ParsedCommand{
		Kind:    domain.CommandUnknown,
		Args:    domain.Arguments{},
		RawText: trimmed,
	}
}

func IsValid(text string) bool {
	return Parse(text).Kind != domain.CommandUnknown
}

// ToIntent maps commands that move funds to an action intent.
func ToIntent(cmd domain.ParsedCommand) (*domain.Intent, bool) {
	switch cmd.Kind {
	case domain.CommandRefuel:
		return &domain.Intent{
			Type:                 domain.ActionRefuel,
			Params:               map[string]any{},
			RequiresConfirmation: false,
		}, true
	case domain.CommandRebalance:
		return &domain.Intent{
			Type: domain.ActionRebalance,
			Params: map[string]any{
				domain.ArgAssetType:        cmd.Args.String(domain.ArgAssetType),
				domain.ArgTargetPercentage: cmd.Args.Float(domain.ArgTargetPercentage),
			},
			RequiresConfirmation: true,
		}, true
	default:
		return nil, false
	}
}

func parseRebalance(text string) (domain.ParsedCommand, bool) {
	match := rebalancePattern.FindStringSubmatch(text)
	if match == nil {
		return domain.ParsedCommand{}, false
	}

	percentage, err := strconv.ParseFloat(match[2], 64)
	if err != nil || math.IsInf(percentage, 0) || math.IsNaN(percentage) {
		return domain.ParsedCommand{}, false
	}

	return domain.ParsedCommand{
		Kind: domain.CommandRebalance,
		Args: domain.Arguments{
			domain.ArgAssetType:        strings.ToLower(match[1]),
			domain.ArgTargetPercentage: percentage,
		},
		RawText: text,
	}, true
}
