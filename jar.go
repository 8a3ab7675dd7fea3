package cookiekit

import (
	"iter"
	"maps"
	"slices"
	"time"
)

type entryState int

const (
	// stateUnchanged marks a cookie that came in with the request and
	// has not been touched; it needs no Set-Cookie header.
	stateUnchanged entryState = iota
	stateChanged
	stateRemoved
)

type entry struct {
	cookie Cookie
	state  entryState
}

// Jar is the per-request cookie collection, keyed by name. It tracks
// which entries changed during the request so that export produces a
// Set-Cookie header only where the client needs one.
//
// Jar itself is not safe for concurrent use; wrap it in a Manager to
// share it between goroutines.
type Jar struct {
	entries map[string]*entry
}

// NewJar returns an empty jar.
func NewJar() *Jar {
	return &Jar{entries: make(map[string]*entry)}
}

// ParseJar builds a jar from a raw Cookie request header using the
// lenient grammar. Malformed pairs are dropped, so this never fails;
// an unparsable header simply yields an empty jar.
func ParseJar(header string) *Jar {
	pairs, _ := ParseCookieHeader(header, ModeLenient)
	return newJarFromPairs(pairs)
}

// ParseJarStrict builds a jar from a raw Cookie request header using
// the strict grammar. On any grammar violation it returns
// ErrMalformedHeader and no jar.
func ParseJarStrict(header string) (*Jar, error) {
	pairs, err := ParseCookieHeader(header, ModeStrict)
	if err != nil {
		return nil, err
	}
	return newJarFromPairs(pairs), nil
}

// newJarFromPairs seeds a jar with request cookies, marked unchanged.
// Pairs arrive in header order, so a duplicated name resolves to its
// last occurrence.
func newJarFromPairs(pairs []Cookie) *Jar {
	jar := NewJar()
	for _, c := range pairs {
		jar.entries[c.Name] = &entry{cookie: c, state: stateUnchanged}
	}
	return jar
}

// Add inserts the cookie, overwriting any entry with the same name,
// and marks it for export.
func (j *Jar) Add(c Cookie) {
	j.entries[c.Name] = &entry{cookie: c, state: stateChanged}
}

// Remove tombstones the named cookie: the entry stays in the jar,
// keeping its Domain and Path so the expiring Set-Cookie reaches the
// same scope the original was set with. Removing a name the jar never
// held still records a tombstone, because the client may hold a cookie
// this request did not carry. It never fails.
func (j *Jar) Remove(name string) {
	if e, ok := j.entries[name]; ok {
		e.cookie.Value = ""
		e.state = stateRemoved
		return
	}
	j.entries[name] = &entry{cookie: Cookie{Name: name}, state: stateRemoved}
}

// Get returns the named cookie if it is present and not tombstoned.
func (j *Jar) Get(name string) (Cookie, bool) {
	e, ok := j.entries[name]
	if !ok || e.state == stateRemoved {
		return Cookie{}, false
	}
	return e.cookie, true
}

// All returns a restartable sequence over a snapshot of the live
// (non-tombstoned) cookies in name order. Mutating the jar after the
// call does not affect a sequence already obtained.
func (j *Jar) All() iter.Seq[Cookie] {
	snapshot := make([]Cookie, 0, len(j.entries))
	for _, name := range slices.Sorted(maps.Keys(j.entries)) {
		if e := j.entries[name]; e.state != stateRemoved {
			snapshot = append(snapshot, e.cookie)
		}
	}
	return func(yield func(Cookie) bool) {
		for _, c := range snapshot {
			if !yield(c) {
				return
			}
		}
	}
}

// ExportChanges returns, in name order, every cookie that must become
// a Set-Cookie header: changed entries as-is and tombstoned entries
// rewritten to expire immediately (empty value, Max-Age=0 on the
// wire). Unchanged request cookies are omitted; the client already has
// them. The jar is not modified, so repeated calls return the same
// sequence.
func (j *Jar) ExportChanges() []Cookie {
	var out []Cookie
	for _, name := range slices.Sorted(maps.Keys(j.entries)) {
		e := j.entries[name]
		switch e.state {
		case stateChanged:
			out = append(out, e.cookie)
		case stateRemoved:
			out = append(out, Cookie{
				Name:    e.cookie.Name,
				Domain:  e.cookie.Domain,
				Path:    e.cookie.Path,
				MaxAge:  -1,
				Expires: time.Unix(0, 0),
			})
		}
	}
	return out
}
