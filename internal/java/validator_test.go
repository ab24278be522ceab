package java

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeJDK builds a JDK-shaped directory whose java binary is a
// shell script printing the given banner to stderr.
func writeFakeJDK(t *testing.T, banner string) string {
	t.Helper()
	requireShellScripts(t)

	root := t.TempDir()
	bin := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(bin, 0755))

	require.NoError(t, os.WriteFile(filepath.Join(bin, "javac"), []byte("#!/bin/sh\nexit 0\n"), 0755))

	script := "#!/bin/sh\necho '" + banner + "' 1>&2\n"
	require.NoError(t, os.WriteFile(filepath.Join(bin, "java"), []byte(script), 0755))

	return root
}

func requireShellScripts(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake JDK binaries are shell scripts")
	}
}

func TestValidateEmptyPath(t *testing.T) {
	candidates := []Candidate{{Name: EnvJavaHome, Source: SourceEnvVariable}}

	Validate(candidates)

	assert.Equal(t, ValidityInvalid, candidates[0].Validity)
	assert.Contains(t, candidates[0].Hint, "not pointing to a JDK")
}

func TestValidateMissingCompiler(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bin"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "bin", "java"+exeSuffix()), []byte("stub"), 0755))

	candidates := []Candidate{{Name: "java.home", Path: root, Source: SourceUserSetting}}
	Validate(candidates)

	assert.Equal(t, ValidityInvalid, candidates[0].Validity)
	assert.Contains(t, candidates[0].Hint, "not pointing to a JDK")
	assert.NotContains(t, candidates[0].Hint, "removing")
}

func TestValidateTrailingBinSegment(t *testing.T) {
	binDir := filepath.Join(t.TempDir(), "Bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))

	candidates := []Candidate{{Name: EnvJavaHome, Path: binDir, Source: SourceEnvVariable}}
	Validate(candidates)

	assert.Equal(t, ValidityInvalid, candidates[0].Validity)
	assert.Contains(t, candidates[0].Hint, "not pointing to a JDK")
	assert.Contains(t, candidates[0].Hint, "removing the trailing \"bin\" segment")
}

func TestValidateModernJDK(t *testing.T) {
	root := writeFakeJDK(t, "openjdk version \"17.0.2\" 2022-01-18")

	candidates := []Candidate{{Name: EnvJavaHome, Path: root, Source: SourceEnvVariable}}
	Validate(candidates)

	assert.Equal(t, ValidityValid, candidates[0].Validity)
	assert.Empty(t, candidates[0].Hint)
}

func TestValidateVersionTooOld(t *testing.T) {
	root := writeFakeJDK(t, "openjdk version \"1.8.0_292\"")

	candidates := []Candidate{{Name: EnvJavaHome, Path: root, Source: SourceEnvVariable}}
	Validate(candidates)

	assert.Equal(t, ValidityInvalid, candidates[0].Validity)
	assert.Contains(t, candidates[0].Hint, "11")
	assert.Contains(t, candidates[0].Hint, "8")
}

func TestValidateRuntimeBinaryFailure(t *testing.T) {
	requireShellScripts(t)

	root := t.TempDir()
	bin := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(bin, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "javac"), []byte("#!/bin/sh\nexit 0\n"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "java"), []byte("#!/bin/sh\nexit 1\n"), 0755))

	candidates := []Candidate{{Name: EnvJavaHome, Path: root, Source: SourceEnvVariable}}
	Validate(candidates)

	// Execution failure collapses into "version 0", never an error.
	assert.Equal(t, ValidityInvalid, candidates[0].Validity)
	assert.Contains(t, candidates[0].Hint, "0")
}

func TestRuntimeUsable(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Candidate
		want       bool
	}{
		{
			name: "first non-empty is valid",
			candidates: []Candidate{
				{Path: "", Validity: ValidityInvalid},
				{Path: "/jdk17", Validity: ValidityValid},
				{Path: "/jdk8", Validity: ValidityInvalid},
			},
			want: true,
		},
		{
			name: "first non-empty is invalid despite later valid entry",
			candidates: []Candidate{
				{Path: "", Validity: ValidityInvalid},
				{Path: "/jdk8", Validity: ValidityInvalid},
				{Path: "/jdk17", Validity: ValidityValid},
			},
			want: false,
		},
		{
			name: "all paths empty",
			candidates: []Candidate{
				{Path: "", Validity: ValidityInvalid},
				{Path: "", Validity: ValidityInvalid},
			},
			want: false,
		},
		{
			name:       "no candidates",
			candidates: nil,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RuntimeUsable(tt.candidates))
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "jdk"), ExpandHome("~/jdk"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "/opt/jdk", ExpandHome("/opt/jdk"))
	assert.Equal(t, "no~expansion", ExpandHome("no~expansion"))
}
