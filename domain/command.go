package domain

type CommandKind string

const (
	CommandStart     CommandKind = "start"
	CommandHelp      CommandKind = "help"
	CommandLink      CommandKind = "link"
	CommandStatus    CommandKind = "status"
	CommandRefuel    CommandKind = "refuel"
	CommandRebalance CommandKind = "rebalance"
	CommandSettings  CommandKind = "settings"
	CommandDetails   CommandKind = "details"
	CommandUnknown   CommandKind = "unknown"
)

const (
	ArgAssetType        = "assetType"
	ArgTargetPercentage = "targetPercentage"
)

// Arguments holds parsed command arguments. Values are either string or float64.
type Arguments map[string]any

func (a Arguments) String(name string) string {
	value, _ := a[name].(string)
	return value
}

func (a Arguments) Float(name string) float64 {
	value, _ := a[name].(float64)
	return value
}

type ParsedCommand struct {
	Kind    CommandKind
	Args    Arguments
	RawText string
}

type ActionType string

const (
	ActionRefuel    ActionType = "refuel"
	ActionRebalance ActionType = "rebalance"
)

type Intent struct {
	Type                 ActionType
	Params               map[string]any
	RequiresConfirmation bool
}
