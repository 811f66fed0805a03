// Package registry implements artifact lifecycle operations over the store:
// add, remove, rename, listing with live source attachment, and copying
// global artifacts into a project. One generic service covers every artifact
// type; nothing here is specialized per type.
package registry
