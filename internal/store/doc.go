// Package store persists artifact records. The default implementation keeps
// the whole registry in one YAML document under ~/.tooldock/ and serializes
// writes so two concurrent adds cannot mint duplicate names within a
// (scope, project, type) key.
package store
