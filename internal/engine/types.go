package engine

// Action records the outcome of one config entry operation.
type Action struct {
	HostPath string
	RepoPath string
	Action   string // "installed", "synced", "would install", "would sync"
	Backup   string // backup location, empty when nothing was backed up
}

// EntryError associates a failure with the config entry that caused it.
type EntryError struct {
	Path string
	Err  error
}

func (e EntryError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e EntryError) Unwrap() error {
	return e.Err
}

// Result aggregates the outcome over a run of entries. A run keeps going
// past individual failures; overall success means no entry failed.
type Result struct {
	Applied []Action
	Errors  []EntryError
}

// OK reports whether every entry succeeded.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}
