//go:build !windows

package java

import (
	"os"
	"path/filepath"
	"runtime"
)

// wellKnownInstallDirs lists the locations JDKs usually land in on
// Linux and macOS package managers and vendor installers.
var wellKnownInstallDirs = []string{
	"/usr/lib/jvm",
	"/usr/java",
	"/opt/java",
	"/Library/Java/JavaVirtualMachines",
}

// detectInstalledJDK probes well-known install locations for a JDK
// root. It returns false when nothing usable is found; the caller
// omits the candidate rather than marking it invalid.
func detectInstalledJDK() (string, bool) {
	// SDKMAN keeps a stable symlink to the active JDK.
	if home, err := os.UserHomeDir(); err == nil {
		current := filepath.Join(home, ".sdkman", "candidates", "java", "current")
		if hasCompiler(current) {
			return current, true
		}
	}

	for _, base := range wellKnownInstallDirs {
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			root := filepath.Join(base, entry.Name())
			// macOS bundles nest the actual root one level down.
			if runtime.GOOS == "darwin" {
				root = filepath.Join(root, "Contents", "Home")
			}
			if hasCompiler(root) {
				return root, true
			}
		}
	}

	return "", false
}
