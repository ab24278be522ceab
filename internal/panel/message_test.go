package panel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jrc/internal/advisor"
	"jrc/internal/java"
)

func TestDecodeRequestJdkInfo(t *testing.T) {
	msg, err := DecodeInbound([]byte(`{"command":"requestJdkInfo","jdkVersion":"openjdk11","jvmImpl":"openj9"}`))
	require.NoError(t, err)

	req, ok := msg.(RequestJdkInfo)
	require.True(t, ok)
	assert.Equal(t, "openjdk11", req.JdkVersion)
	assert.Equal(t, "openj9", req.JvmImpl)
}

func TestDecodeTabActivated(t *testing.T) {
	msg, err := DecodeInbound([]byte(`{"command":"tabActivated","tabId":"discovery"}`))
	require.NoError(t, err)

	tab, ok := msg.(TabActivated)
	require.True(t, ok)
	assert.Equal(t, "discovery", tab.TabID)
}

func TestDecodeUnknownCommand(t *testing.T) {
	_, err := DecodeInbound([]byte(`{"command":"installJdk"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown panel command")
}

func TestDecodeMalformedMessage(t *testing.T) {
	_, err := DecodeInbound([]byte(`{not json`))
	require.Error(t, err)
}

func TestApplyJdkInfoEnvelope(t *testing.T) {
	out := NewApplyJdkInfo(advisor.Suggestion{"release_name": "jdk-21+35"})

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"command":"applyJdkInfo"`)
	assert.Contains(t, string(data), `"jdk-21+35"`)
}

func TestShowJavaRuntimeEntriesEnvelope(t *testing.T) {
	entries := []java.Candidate{
		{Name: "JAVA_HOME", Path: "/opt/jdk", Source: java.SourceEnvVariable, Validity: java.ValidityValid},
		{Name: "java.home", Source: java.SourceUserSetting},
	}
	out := NewShowJavaRuntimeEntries(entries)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"command":"showJavaRuntimeEntries"`)
	assert.Contains(t, string(data), `"isValid":true`)
	assert.Contains(t, string(data), `"isValid":null`)
}
