// Package artifact defines the shared data model for ToolDock: the Artifact
// record with its type-specific payloads, the (scope, project, type) partition
// key, the error taxonomy used across the core engines, and schema-backed
// payload validation.
package artifact
