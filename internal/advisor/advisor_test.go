package advisor

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}
	return client, server
}

func TestLatestReleaseDefaults(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"release_name":"jdk-21+35","binaries":[{"os":"linux"}]}`))
	})
	defer server.Close()

	suggestion, err := client.LatestRelease("", "")
	require.NoError(t, err)

	assert.Equal(t, "/v2/info/releases/"+DefaultJDKVersion, gotPath)
	assert.Equal(t, DefaultJVMImpl, gotQuery["openjdk_impl"])
	assert.Equal(t, "jdk", gotQuery["type"])
	assert.Equal(t, "latest", gotQuery["release"])
	assert.Contains(t, []string{"windows", "mac", "linux"}, gotQuery["os"])
	assert.NotEmpty(t, gotQuery["arch"])

	// The suggestion is forwarded verbatim, not interpreted.
	assert.Equal(t, "jdk-21+35", suggestion["release_name"])
	assert.Contains(t, suggestion, "binaries")
}

func TestLatestReleaseExplicitArguments(t *testing.T) {
	var gotPath, gotImpl string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotImpl = r.URL.Query().Get("openjdk_impl")
		w.Write([]byte(`{}`))
	})
	defer server.Close()

	_, err := client.LatestRelease("openjdk11", "openj9")
	require.NoError(t, err)
	assert.Equal(t, "/v2/info/releases/openjdk11", gotPath)
	assert.Equal(t, "openj9", gotImpl)
}

func TestLatestReleaseServiceError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	suggestion, err := client.LatestRelease("", "")
	require.Error(t, err)
	assert.Nil(t, suggestion)
	assert.Contains(t, err.Error(), "status 500")
}

func TestLatestReleaseMalformedResponse(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})
	defer server.Close()

	_, err := client.LatestRelease("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLatestReleaseNetworkError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	// A single attempt, no retry: the failure propagates.
	_, err := client.LatestRelease("", "")
	require.Error(t, err)
}

func TestPlatformTokens(t *testing.T) {
	assert.Contains(t, []string{"windows", "mac", "linux"}, osToken())
	assert.NotEmpty(t, archToken())
}
