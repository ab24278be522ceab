//go:build windows

package env

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

var systemEnvRegPath = `System\CurrentControlSet\Control\Session Manager\Environment`

// jdkRegistryPaths are the keys JDK installers register themselves
// under, newest scheme first.
var jdkRegistryPaths = []string{
	`SOFTWARE\JavaSoft\JDK`,
	`SOFTWARE\JavaSoft\Java Development Kit`,
}

// MachineJavaHome returns the machine-wide JAVA_HOME value from the
// registry, which can differ from the process environment.
func MachineJavaHome() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, systemEnvRegPath, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("failed to open registry key: %w", err)
	}
	defer key.Close()

	value, _, err := key.GetStringValue("JAVA_HOME")
	if err != nil {
		return "", fmt.Errorf("JAVA_HOME not set: %w", err)
	}

	return value, nil
}

// RegistryJDKRoots enumerates the JavaHome values JDK installers wrote
// to the registry. Unreadable keys are skipped silently.
func RegistryJDKRoots() []string {
	var roots []string

	for _, keyPath := range jdkRegistryPaths {
		key, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, registry.ENUMERATE_SUB_KEYS)
		if err != nil {
			continue
		}
		names, err := key.ReadSubKeyNames(-1)
		key.Close()
		if err != nil {
			continue
		}

		for _, name := range names {
			sub, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath+`\`+name, registry.QUERY_VALUE)
			if err != nil {
				continue
			}
			if home, _, err := sub.GetStringValue("JavaHome"); err == nil && home != "" {
				roots = append(roots, home)
			}
			sub.Close()
		}
	}

	return roots
}
