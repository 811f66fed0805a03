// Package scope resolves a requested scope (global, or project plus a project
// path) into the effective artifact view and the effective target set. Global
// and project artifacts are never merged implicitly; callers wanting both
// request both.
package scope
