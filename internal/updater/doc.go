// Package updater checks GitHub Releases for a newer tooldock version. The
// result of the check is cached for a day and drives the startup banner. The
// package only notifies; it never replaces the running binary.
package updater
