// Package cli defines the tooldock command tree. Commands are thin: they
// parse flags, wire the store, target registry, and engines together, and
// render results as tables or JSON. All behavior lives in the internal
// packages they call.
package cli
