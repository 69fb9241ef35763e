package ports

// PreferenceStore persists single string preferences under fixed keys.
//
// Load reports ok=false when nothing is stored under key. Implementations
// return errors for I/O failures only; the theme engine treats a failed load
// the same as a missing value.
type PreferenceStore interface {
	Load(key string) (value string, ok bool, err error)
	Save(key, value string) error
}

// SystemSignal reports the host's "prefers dark" preference.
//
// ok=false means the signal is unavailable in this execution context (no
// terminal, no environment hint) and dark must be ignored.
type SystemSignal interface {
	PrefersDark() (dark bool, ok bool)
}

// PresentationRegistry is the live key/value surface rendered output reads
// token values from, plus the "dark mode active" flag. Writes must be visible
// to the next read.
type PresentationRegistry interface {
	SetToken(name, value string)
	Token(name string) (string, bool)
	SetDark(dark bool)
	Dark() bool
}
