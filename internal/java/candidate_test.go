package java

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jrc/internal/config"
)

func TestEnumerateOrder(t *testing.T) {
	t.Setenv(EnvJDKHome, "/opt/jdk-a")
	t.Setenv(EnvJavaHome, "/opt/jdk-b")

	candidates := Enumerate(&config.Settings{JavaHome: "/opt/jdk-setting"})
	require.GreaterOrEqual(t, len(candidates), 3)

	assert.Equal(t, config.JavaHomeKey, candidates[0].Name)
	assert.Equal(t, "/opt/jdk-setting", candidates[0].Path)
	assert.Equal(t, SourceUserSetting, candidates[0].Source)
	assert.NotEmpty(t, candidates[0].ActionHint)

	assert.Equal(t, EnvJDKHome, candidates[1].Name)
	assert.Equal(t, "/opt/jdk-a", candidates[1].Path)
	assert.Equal(t, SourceEnvVariable, candidates[1].Source)
	assert.Empty(t, candidates[1].ActionHint)

	assert.Equal(t, EnvJavaHome, candidates[2].Name)
	assert.Equal(t, "/opt/jdk-b", candidates[2].Path)

	// Enumeration alone never validates.
	for _, c := range candidates {
		assert.Equal(t, ValidityUnknown, c.Validity)
		assert.Empty(t, c.Hint)
	}
}

func TestEnumerateKeepsUnsetSources(t *testing.T) {
	t.Setenv(EnvJDKHome, "")
	t.Setenv(EnvJavaHome, "")

	candidates := Enumerate(&config.Settings{})
	require.GreaterOrEqual(t, len(candidates), 3)

	// Unset sources still contribute entries, just with empty paths.
	assert.Empty(t, candidates[0].Path)
	assert.Empty(t, candidates[1].Path)
	assert.Empty(t, candidates[2].Path)
}

func TestValidateRuntimeWithJavaHomeOnly(t *testing.T) {
	root := writeFakeJDK(t, "openjdk version \"17.0.2\" 2022-01-18")

	t.Setenv(EnvJDKHome, "")
	t.Setenv(EnvJavaHome, root)

	settings := &config.Settings{}
	candidates := Enumerate(settings)
	require.GreaterOrEqual(t, len(candidates), 3)
	require.LessOrEqual(t, len(candidates), 4)

	// JAVA_HOME is the first candidate with a non-empty path.
	assert.Empty(t, candidates[0].Path)
	assert.Empty(t, candidates[1].Path)
	assert.Equal(t, root, candidates[2].Path)

	assert.True(t, ValidateRuntime(settings))
}

func TestValidateRuntimeFirstNonEmptyWins(t *testing.T) {
	root := writeFakeJDK(t, "openjdk version \"17.0.2\" 2022-01-18")

	// JDK_HOME precedes JAVA_HOME and points at garbage, so the valid
	// JAVA_HOME entry must not rescue the verdict.
	t.Setenv(EnvJDKHome, filepath.Join(t.TempDir(), "missing"))
	t.Setenv(EnvJavaHome, root)

	assert.False(t, ValidateRuntime(&config.Settings{}))
}

func TestJavaHomeSettingWithoutCompiler(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bin"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "bin", "java"+exeSuffix()), []byte("stub"), 0755))

	t.Setenv(EnvJDKHome, "")
	t.Setenv(EnvJavaHome, "")

	candidates := Enumerate(&config.Settings{JavaHome: root})
	Validate(candidates)

	assert.Equal(t, ValidityInvalid, candidates[0].Validity)
	assert.Contains(t, candidates[0].Hint, "not pointing to a JDK")
	assert.NotContains(t, candidates[0].Hint, "removing")
}

func TestCandidateJSON(t *testing.T) {
	tests := []struct {
		name     string
		validity Validity
		want     string
	}{
		{"unknown is null", ValidityUnknown, `"isValid":null`},
		{"valid is true", ValidityValid, `"isValid":true`},
		{"invalid is false", ValidityInvalid, `"isValid":false`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(Candidate{Name: "JAVA_HOME", Source: SourceEnvVariable, Validity: tt.validity})
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
			assert.Contains(t, string(data), `"sourceKind":"EnvironmentVariable"`)
		})
	}
}

func TestValidityRoundTrip(t *testing.T) {
	for _, v := range []Validity{ValidityUnknown, ValidityValid, ValidityInvalid} {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var got Validity
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, v, got)
	}
}
