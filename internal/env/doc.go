// Package env reads machine-level Java environment state. Only
// Windows carries registry-backed helpers; other platforms rely on the
// process environment, read by the discovery code directly.
package env
