package model

// PrepareState summarizes how a file's @PrepareForTest block relates to its
// mockStatic calls.
type PrepareState string

const (
	// PrepareNone means there are no mockStatic calls and no annotation.
	PrepareNone PrepareState = "-"
	// PrepareMissing means mockStatic calls exist but no annotation does.
	PrepareMissing PrepareState = "missing"
	// PrepareOK means the annotation lists exactly the mocked classes.
	PrepareOK PrepareState = "ok"
	// PrepareStale means the annotation disagrees with the mocked classes.
	PrepareStale PrepareState = "stale"
)

// InventoryEntry is one row of the `list` output.
type InventoryEntry struct {
	Path          Path         `yaml:"path"`
	Class         string       `yaml:"class,omitempty"`
	Kind          TypeKind     `yaml:"kind,omitempty"`
	PublicMethods int          `yaml:"public_methods"`
	Mocked        []string     `yaml:"mocked,omitempty"`
	Prepare       PrepareState `yaml:"prepare"`
}

// NotificationLevel is the severity of a user-facing notification.
type NotificationLevel int

const (
	// LevelDebug notifications describe intermediate values.
	LevelDebug NotificationLevel = iota
	// LevelInfo notifications report progress and results.
	LevelInfo
	// LevelError notifications report a failed command.
	LevelError
)

// String returns the level label used in output.
func (l NotificationLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is a short message surfaced to the user.
type Notification struct {
	Level   NotificationLevel
	Title   string
	Message string
}
