package updater

import (
	"fmt"
	"io"
	"time"

	"github.com/tooldock-labs/tooldock/internal/branding"
)

// CheckAndPrintBanner prints an update notice when the cached check says a
// newer release exists, then refreshes a stale cache in the background. It
// never blocks command execution on the network.
func (ch *Checker) CheckAndPrintBanner(w io.Writer, cacheDir string) {
	result, err := LoadCache(cacheDir)
	if err != nil {
		// A corrupt cache is not worth interrupting the user for.
		return
	}

	if result != nil && result.UpdateAvailable && result.CurrentVersion == ch.currentVersion {
		PrintBanner(w, result.CurrentVersion, result.LatestVersion)
	}

	if Stale(result) {
		go ch.refreshCache(cacheDir)
	}
}

// PrintBanner writes the update notification to w.
func PrintBanner(w io.Writer, current, latest string) {
	fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", current, latest)
	fmt.Fprintf(w, "    https://github.com/%s/releases\n\n", branding.GitHubRepo())
}

func (ch *Checker) refreshCache(cacheDir string) {
	release, err := ch.LatestRelease()
	if err != nil {
		return
	}

	newer, err := IsNewer(ch.currentVersion, release.Version)
	if err != nil {
		return
	}

	_ = SaveCache(cacheDir, &CheckResult{
		LatestVersion:   release.Version,
		CurrentVersion:  ch.currentVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: newer,
	})
}
