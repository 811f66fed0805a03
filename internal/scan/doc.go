// Package scan discovers foreign AI-tool artifacts already present in a
// project directory and merges selected ones into the registry. A fixed set
// of format detectors runs independently per scan; a broken detector
// contributes nothing instead of aborting the others. Candidates colliding
// with names already in the destination are filtered out before anything is
// offered for import.
package scan
