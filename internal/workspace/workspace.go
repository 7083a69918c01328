package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrScratchNotWritable signals that the staging area cannot be used.
var ErrScratchNotWritable = errors.New("scratch directory not writable")

// Paths holds the on-disk layout for one run. The scratch directory is
// wiped at the start and end of every run; the profile directory persists
// across runs so the wallet extension keeps its state.
type Paths struct {
	Scratch     string // temp_images
	BrowserData string // browser_profiles
	Profile     string // browser_profiles/automation_profile
}

func New(scratchPath, browserPath string) Paths {
	return Paths{
		Scratch:     scratchPath,
		BrowserData: browserPath,
		Profile:     filepath.Join(browserPath, "automation_profile"),
	}
}

// PrepareScratch recreates the scratch directory from a clean slate and
// verifies it is writable before any downloads start.
func (p Paths) PrepareScratch() error {
	if err := os.RemoveAll(p.Scratch); err != nil {
		return fmt.Errorf("%w: %v", ErrScratchNotWritable, err)
	}
	if err := os.MkdirAll(p.Scratch, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrScratchNotWritable, err)
	}

	probe := filepath.Join(p.Scratch, ".probe")
	if err := os.WriteFile(probe, []byte("probe"), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrScratchNotWritable, err)
	}
	os.Remove(probe)
	return nil
}

// EnsureProfile creates the persistent browser profile tree if missing and
// reports whether a profile from a previous run was found.
func (p Paths) EnsureProfile() (bool, error) {
	existed := false
	if _, err := os.Stat(p.Profile); err == nil {
		existed = true
	}
	if err := os.MkdirAll(p.Profile, 0755); err != nil {
		return existed, err
	}
	return existed, nil
}

// CleanScratch removes staged payloads. Best effort, always called at end
// of run regardless of outcome.
func (p Paths) CleanScratch() {
	os.RemoveAll(p.Scratch)
}
