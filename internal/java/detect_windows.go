//go:build windows

package java

import (
	"os"
	"path/filepath"

	"jrc/internal/env"
)

// standardInstallDirs are the well-known Windows locations vendors
// install JDKs under.
var standardInstallDirs = []string{
	`C:\Program Files\Java`,
	`C:\Program Files (x86)\Java`,
	`C:\Program Files\Eclipse Adoptium`,
	`C:\Program Files\Eclipse Foundation`,
	`C:\Program Files\Zulu`,
	`C:\Program Files\Amazon Corretto`,
	`C:\Program Files\Microsoft`,
}

// detectInstalledJDK probes the registry and well-known install
// directories for a JDK root. It returns false when nothing usable is
// found; the caller omits the candidate rather than marking it invalid.
func detectInstalledJDK() (string, bool) {
	// Registry entries written by JDK installers are the most reliable.
	for _, root := range env.RegistryJDKRoots() {
		if hasCompiler(root) {
			return filepath.Clean(root), true
		}
	}

	// Machine-level JAVA_HOME may differ from the process environment.
	if root, err := env.MachineJavaHome(); err == nil && hasCompiler(root) {
		return filepath.Clean(root), true
	}

	for _, base := range standardInstallDirs {
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			root := filepath.Join(base, entry.Name())
			if hasCompiler(root) {
				return root, true
			}
		}
	}

	return "", false
}
