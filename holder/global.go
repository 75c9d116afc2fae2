package holder

import "sync"

var (
	globalMu sync.Mutex
	global   *Holder
)

// Global returns the process-wide Holder, creating it with an empty
// loader on first access if no loader has been installed yet.
func Global() *Holder {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = New(Empty())
	}
	return global
}

// SetLoader installs a fresh process-wide Holder using loader. Intended
// for application start-up (or tests) before any conversion has run; if
// the previous global Holder already loaded its dictionaries, those are
// simply discarded in favour of a new, not-yet-loaded Holder.
func SetLoader(loader Loader) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = New(loader)
}
