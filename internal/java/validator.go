package java

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"jrc/internal/config"
)

// MinMajorVersion is the lowest Java release the tooling supports.
const MinMajorVersion = 11

const (
	hintNotJDK    = "The path is not pointing to a JDK."
	hintDropBin   = " Try removing the trailing \"bin\" segment."
	hintTooOldFmt = "Java %d or more recent is required, but %d was found."
)

var versionPattern = regexp.MustCompile(`version\s+"([^"]+)"`)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Validate decorates each candidate in place with its validity and,
// when invalid, a human-readable hint. Candidates are checked
// independently and in order; nothing here ever returns an error.
func Validate(candidates []Candidate) {
	for i := range candidates {
		validateOne(&candidates[i])
	}
}

func validateOne(c *Candidate) {
	if c.Path == "" {
		c.Validity = ValidityInvalid
		c.Hint = hintNotJDK
		return
	}

	root := ExpandHome(c.Path)

	if !hasCompiler(root) {
		c.Validity = ValidityInvalid
		c.Hint = hintNotJDK
		// Pointing at <jdk>/bin instead of the JDK root is a common
		// mistake worth calling out.
		if strings.EqualFold(filepath.Base(filepath.Clean(root)), "bin") {
			c.Hint += hintDropBin
		}
		return
	}

	major := probeMajorVersion(root)
	if major < MinMajorVersion {
		c.Validity = ValidityInvalid
		c.Hint = fmt.Sprintf(hintTooOldFmt, MinMajorVersion, major)
		return
	}

	c.Validity = ValidityValid
	c.Hint = ""
}

// ValidateRuntime enumerates and validates all candidates, then
// reports whether the effective Java runtime is usable.
func ValidateRuntime(settings *config.Settings) bool {
	candidates := Enumerate(settings)
	Validate(candidates)
	return RuntimeUsable(candidates)
}

// RuntimeUsable applies the convention downstream tooling uses: the
// first candidate with a non-empty path is authoritative. When every
// path is empty it falls back to "usable if any candidate is valid",
// which in practice always evaluates to false but is kept as-is.
func RuntimeUsable(candidates []Candidate) bool {
	for _, c := range candidates {
		if c.Path != "" {
			return c.Validity == ValidityValid
		}
	}
	for _, c := range candidates {
		if c.Validity == ValidityValid {
			return true
		}
	}
	return false
}

// ExpandHome resolves a leading ~ against the invoking user's home
// directory. Paths without the prefix are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// hasCompiler checks for the platform-appropriate compiler binary
// under the candidate root. A runtime alone is not a JDK.
func hasCompiler(root string) bool {
	javac := filepath.Join(root, "bin", "javac"+exeSuffix())
	_, err := os.Stat(javac)
	return err == nil
}

// probeMajorVersion runs the candidate's runtime binary with -version
// and parses the major version out of the diagnostic stream. Any
// execution failure reads as version 0, never as an error.
func probeMajorVersion(root string) int {
	javaBin := filepath.Join(root, "bin", "java"+exeSuffix())
	cmd := exec.Command(javaBin, "-version")

	// The version banner goes to stderr, not stdout.
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return 0
	}

	return MajorVersion(stderr.String())
}

// MajorVersion extracts the major Java version from a `java -version`
// banner. It is a two-stage parse: take the quoted token following the
// word "version", then take its first run of decimal digits. A leading
// "1." is stripped first, mapping the legacy scheme (1.8 -> 8).
// Banners that match neither stage yield 0.
func MajorVersion(banner string) int {
	token := quotedVersionToken(banner)
	if token == "" {
		return 0
	}

	if strings.HasPrefix(token, "1.") {
		token = token[2:]
	}

	digits := digitRun.FindString(token)
	if digits == "" {
		return 0
	}

	major, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return major
}

// quotedVersionToken returns the quoted token after the literal word
// "version", or empty when the banner has no such token.
func quotedVersionToken(banner string) string {
	matches := versionPattern.FindStringSubmatch(banner)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// exeSuffix returns the executable suffix for the running platform.
func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
