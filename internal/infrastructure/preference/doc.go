// Package preference persists the user's colour-mode choice.
//
// Three backends implement ports.PreferenceStore: an in-process map, a YAML
// document on disk and a SQLite table. Open selects one by name.
package preference
