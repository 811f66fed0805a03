// Package target defines the adapter contract for external tools whose config
// files can carry artifact entries, and ships adapters for the supported
// tools (Claude Code, Claude Desktop, Cursor, VS Code, Zed, Codex). Each
// adapter knows its tool's config location for global and project scope and
// performs idempotent read-modify-write edits that leave unrelated keys
// untouched.
package target
