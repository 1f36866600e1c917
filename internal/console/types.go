package console

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

// Quantity is a parsed duration argument such as "3", "3h", "90m" or
// "45s". Hours carries the value converted to game hours.
type Quantity struct {
	Raw   string
	Hours float64
	Unit  string
}

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries the simulation vocabulary arguments resolve
// against: the known region names, the weather type names, and the
// region the player currently stands in for commands that omit one.
type ParseContext struct {
	Regions       []string
	WeatherTypes  []string
	CurrentRegion string
}

type CommandDef struct {
	Canonical  string
	Aliases    []string
	MinArgs    int
	MaxArgs    int
	HandlerKey string
}
