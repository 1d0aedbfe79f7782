// Package keymap holds the static per-platform code tables for the logical
// key space. The tables are pure data, compiled on every platform so they can
// be inspected and tested anywhere; only the event injection itself is
// platform-gated.
//
// A missing entry is a table defect, not a runtime condition: the injector
// fails resolution explicitly instead of guessing a code.
package keymap
