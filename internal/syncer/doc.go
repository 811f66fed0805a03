// Package syncer applies desired artifact membership onto target tool
// configs. Each requested target is processed independently and yields
// exactly one result; a failing target never aborts the others. Writes to a
// single target are serialized through the adapter registry's per-target
// locks, so the engine is safe to invoke concurrently.
package syncer
