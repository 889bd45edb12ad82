package soap

import (
	"sync"

	sderrors "github.com/magenta-aps/sd-connector/pkg/sd/errors"
)

// The shared session cache is keyed by credential identity and guarded so
// that concurrent first constructions for the same pair still end up with a
// single session. Entries are reference counted: Acquire takes a reference,
// Session.Close drops one, and the transport is only torn down when the
// last reference goes.
var cache = struct {
	mu      sync.Mutex
	entries map[Credentials]*cacheEntry
}{
	entries: map[Credentials]*cacheEntry{},
}

type cacheEntry struct {
	session *Session
	refs    int
}

// Acquire returns the shared session for the credential pair, creating it
// on first use.
func Acquire(creds Credentials) *Session {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	entry, ok := cache.entries[creds]
	if !ok {
		entry = &cacheEntry{session: NewSession(creds)}
		entry.session.release = func() error {
			return releaseShared(creds)
		}
		cache.entries[creds] = entry
	}

	entry.refs++
	return entry.session
}

func releaseShared(creds Credentials) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	entry, ok := cache.entries[creds]
	if !ok {
		return sderrors.NewReleaseError("session released more often than acquired")
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(cache.entries, creds)
		entry.session.httpClient.CloseIdleConnections()
	}

	return nil
}
