package model

// ShellScope identifies the class of filesystem object a menu entry is
// registered for.
type ShellScope int

const (
	FileScope   ShellScope = iota // Any file (*\shell)
	FolderScope                   // Directories (Directory\shell)
)

// AllScopes lists every supported scope in install order.
// Files come first: a failure there means folders are never touched.
var AllScopes = []ShellScope{FileScope, FolderScope}

// Root returns the shell subtree of the scope, relative to HKEY_CLASSES_ROOT.
func (s ShellScope) Root() string {
	switch s {
	case FileScope:
		return `*\shell`
	case FolderScope:
		return `Directory\shell`
	default:
		return ""
	}
}

func (s ShellScope) String() string {
	switch s {
	case FileScope:
		return "files"
	case FolderScope:
		return "folders"
	default:
		return "unknown"
	}
}

// MarshalText lets scopes appear by name in JSON output.
func (s ShellScope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// InstallationState is derived from the store on every query, never stored.
type InstallationState int

const (
	Absent InstallationState = iota
	Present
)

func (st InstallationState) String() string {
	if st == Present {
		return "installed"
	}
	return "not installed"
}

func (st InstallationState) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}

// ScopeStatus describes the menu entry of one scope as found in the store.
type ScopeStatus struct {
	Scope      ShellScope        `json:"scope"`
	State      InstallationState `json:"state"`
	Command    string            `json:"command,omitempty"`    // Raw default value of the Command key
	Executable string            `json:"executable,omitempty"` // Executable parsed out of Command
	Stale      bool              `json:"stale"`                // Points to a different or missing executable
}
