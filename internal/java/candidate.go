package java

import (
	"encoding/json"
	"os"

	"jrc/internal/config"
)

// Environment variables consulted during discovery, in priority order
// after the user setting.
const (
	EnvJDKHome  = "JDK_HOME"
	EnvJavaHome = "JAVA_HOME"
)

// autoDetectedName labels candidates produced by the platform probe.
const autoDetectedName = "Other"

// SourceKind identifies where a JDK candidate path came from.
type SourceKind int

const (
	SourceUserSetting SourceKind = iota
	SourceEnvVariable
	SourceAutoDetected
)

func (k SourceKind) String() string {
	switch k {
	case SourceUserSetting:
		return "UserSetting"
	case SourceEnvVariable:
		return "EnvironmentVariable"
	case SourceAutoDetected:
		return "AutoDetected"
	}
	return "Unknown"
}

// MarshalJSON renders the kind as its name for the UI boundary.
func (k SourceKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Validity is the tri-state outcome of candidate validation. Enumeration
// never sets it; only the validator does.
type Validity int

const (
	ValidityUnknown Validity = iota
	ValidityValid
	ValidityInvalid
)

// MarshalJSON renders the tri-state as null, true or false.
func (v Validity) MarshalJSON() ([]byte, error) {
	switch v {
	case ValidityValid:
		return []byte("true"), nil
	case ValidityInvalid:
		return []byte("false"), nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts null, true or false.
func (v *Validity) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*v = ValidityValid
	case "false":
		*v = ValidityInvalid
	default:
		*v = ValidityUnknown
	}
	return nil
}

// Candidate is one possible JDK root examined during discovery.
// Entries are produced fresh on every enumeration and decorated in
// place by the validator; nothing is cached between calls.
type Candidate struct {
	Name       string     `json:"name"`                 // Source identifier (settings key, env var name, or "Other")
	Path       string     `json:"path,omitempty"`       // Candidate root, empty when the source is unset
	Source     SourceKind `json:"sourceKind"`           //
	ActionHint string     `json:"actionHint,omitempty"` // Opaque UI reference to jump to the setting
	Validity   Validity   `json:"isValid"`              //
	Hint       string     `json:"hint,omitempty"`       // Human-readable diagnostic, set only when invalid
}

// Enumerate gathers JDK candidates in fixed priority order: the
// java.home setting, JDK_HOME, JAVA_HOME, then the platform probe.
// Unset sources still contribute an entry with an empty path; only a
// failed platform probe is omitted entirely.
func Enumerate(settings *config.Settings) []Candidate {
	candidates := []Candidate{
		{
			Name:       config.JavaHomeKey,
			Path:       settings.JavaHome,
			Source:     SourceUserSetting,
			ActionHint: "open-setting:" + config.JavaHomeKey,
		},
		{
			Name:   EnvJDKHome,
			Path:   os.Getenv(EnvJDKHome),
			Source: SourceEnvVariable,
		},
		{
			Name:   EnvJavaHome,
			Path:   os.Getenv(EnvJavaHome),
			Source: SourceEnvVariable,
		},
	}

	if root, ok := detectInstalledJDK(); ok {
		candidates = append(candidates, Candidate{
			Name:   autoDetectedName,
			Path:   root,
			Source: SourceAutoDetected,
		})
	}

	return candidates
}
