package advisor

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
)

const (
	// DefaultBaseURL is the public release-metadata service.
	DefaultBaseURL = "https://api.adoptopenjdk.net"

	// DefaultJDKVersion is the current LTS distribution.
	DefaultJDKVersion = "openjdk21"

	// DefaultJVMImpl is the default JVM implementation.
	DefaultJVMImpl = "hotspot"
)

// Suggestion is the release metadata returned by the service. It is
// structured but uninterpreted here; the UI consumes it verbatim.
type Suggestion map[string]any

// Client queries the release-metadata service for suggested JDK
// downloads.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client against the public service.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
	}
}

// LatestRelease fetches the newest release of the given distribution
// and JVM implementation for the running platform. Empty arguments
// fall back to the defaults. A single attempt is made; network and
// service failures propagate to the caller, since the UI has no
// sensible fallback content.
func (c *Client) LatestRelease(jdkVersion, jvmImpl string) (Suggestion, error) {
	if jdkVersion == "" {
		jdkVersion = DefaultJDKVersion
	}
	if jvmImpl == "" {
		jvmImpl = DefaultJVMImpl
	}

	query := url.Values{}
	query.Set("openjdk_impl", jvmImpl)
	query.Set("arch", archToken())
	query.Set("os", osToken())
	query.Set("type", "jdk")
	query.Set("release", "latest")

	requestURL := fmt.Sprintf("%s/v2/info/releases/%s?%s", c.BaseURL, url.PathEscape(jdkVersion), query.Encode())

	resp, err := c.HTTPClient.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to query release info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release service returned status %d for %s", resp.StatusCode, jdkVersion)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var suggestion Suggestion
	if err := json.Unmarshal(body, &suggestion); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return suggestion, nil
}

// osToken maps the running platform to the service's OS identifier.
func osToken() string {
	switch runtime.GOOS {
	case "windows":
		return "windows"
	case "darwin":
		return "mac"
	default:
		return "linux"
	}
}

// archToken maps the running CPU architecture to the service's
// identifier. 32-bit x86 is a distinct token from 64-bit.
func archToken() string {
	switch runtime.GOARCH {
	case "386":
		return "x32"
	case "amd64":
		return "x64"
	case "arm64":
		return "aarch64"
	default:
		return runtime.GOARCH
	}
}
