package panel

import (
	"encoding/json"
	"fmt"

	"jrc/internal/advisor"
	"jrc/internal/java"
)

// Inbound message commands accepted from a panel surface.
const (
	CommandRequestJdkInfo = "requestJdkInfo"
	CommandTabActivated   = "tabActivated"
)

// Outbound message commands posted back to a surface.
const (
	CommandApplyJdkInfo           = "applyJdkInfo"
	CommandShowJavaRuntimeEntries = "showJavaRuntimeEntries"
)

// Inbound is the closed set of messages a surface may deliver. Payloads
// are decoded once, at the boundary; unknown commands are an error.
type Inbound interface {
	inbound()
}

// RequestJdkInfo asks for suggested download metadata for a JDK
// distribution and JVM implementation.
type RequestJdkInfo struct {
	JdkVersion string `json:"jdkVersion"`
	JvmImpl    string `json:"jvmImpl"`
}

func (RequestJdkInfo) inbound() {}

// TabActivated reports that the user switched to a tab inside a panel.
type TabActivated struct {
	TabID string `json:"tabId"`
}

func (TabActivated) inbound() {}

// envelope carries only the command discriminator; the full payload is
// re-decoded into the matching typed message.
type envelope struct {
	Command string `json:"command"`
}

// DecodeInbound parses one raw surface message into its typed form.
func DecodeInbound(data []byte) (Inbound, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed panel message: %w", err)
	}

	switch env.Command {
	case CommandRequestJdkInfo:
		var msg RequestJdkInfo
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("malformed %s payload: %w", env.Command, err)
		}
		return msg, nil

	case CommandTabActivated:
		var msg TabActivated
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("malformed %s payload: %w", env.Command, err)
		}
		return msg, nil

	default:
		return nil, fmt.Errorf("unknown panel command: %q", env.Command)
	}
}

// ApplyJdkInfo carries the advisor's suggestion to the runtime
// configuration panel.
type ApplyJdkInfo struct {
	Command string             `json:"command"`
	JdkInfo advisor.Suggestion `json:"jdkInfo"`
}

// NewApplyJdkInfo wraps a suggestion in its outbound envelope.
func NewApplyJdkInfo(info advisor.Suggestion) ApplyJdkInfo {
	return ApplyJdkInfo{Command: CommandApplyJdkInfo, JdkInfo: info}
}

// ShowJavaRuntimeEntries pushes freshly validated JDK candidates to the
// runtime configuration panel.
type ShowJavaRuntimeEntries struct {
	Command string           `json:"command"`
	Entries []java.Candidate `json:"entries"`
}

// NewShowJavaRuntimeEntries wraps candidates in their outbound envelope.
func NewShowJavaRuntimeEntries(entries []java.Candidate) ShowJavaRuntimeEntries {
	return ShowJavaRuntimeEntries{Command: CommandShowJavaRuntimeEntries, Entries: entries}
}
