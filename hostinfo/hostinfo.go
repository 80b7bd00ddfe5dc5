// Package hostinfo provides the process-level environment provider used to
// capture path-environment snapshots on the running host.
package hostinfo

import (
	"os"
	"runtime"

	"hostwire.io/pathenv/pathenv"
)

// OS reads path semantics from the running operating system.
//
// Every method is a pure read; OS holds no state and is safe for concurrent
// use. The comparison policy follows the platform's filesystem defaults:
// case-insensitive-path platforms get ordinal case folding, everything else
// gets locale-aware comparison.
type OS struct{}

var _ pathenv.Provider = OS{}

func (OS) Comparison() pathenv.ComparisonMode {
	switch runtime.GOOS {
	case "windows", "darwin":
		return pathenv.OrdinalIgnoreCase
	default:
		return pathenv.CultureSensitive
	}
}

func (OS) Separators() (sep, alt, volume uint16) {
	if runtime.GOOS == "windows" {
		return '\\', '/', ':'
	}
	// On Unix-likes there is a single separator and no volume prefix;
	// the volume separator degenerates to '/'.
	return '/', '/', '/'
}

func (OS) WorkingDir() (string, error) {
	return os.Getwd()
}

// Capture returns a snapshot of the running host's path environment.
func Capture() (pathenv.Snapshot, error) {
	return pathenv.Capture(OS{})
}
