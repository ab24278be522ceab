package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMajorVersion(t *testing.T) {
	tests := []struct {
		name   string
		banner string
		want   int
	}{
		{
			name:   "legacy scheme",
			banner: "openjdk version \"1.8.0_292\"\nOpenJDK Runtime Environment (AdoptOpenJDK)(build 1.8.0_292-b10)",
			want:   8,
		},
		{
			name:   "modern scheme",
			banner: "openjdk version \"11.0.2\" 2019-01-15\nOpenJDK Runtime Environment 18.9 (build 11.0.2+9)",
			want:   11,
		},
		{
			name:   "oracle banner",
			banner: "java version \"17.0.1\" 2021-10-19 LTS",
			want:   17,
		},
		{
			name:   "early access suffix",
			banner: "openjdk version \"21-ea\" 2023-09-19",
			want:   21,
		},
		{
			name:   "no version pattern",
			banner: "sh: java: command not found",
			want:   0,
		},
		{
			name:   "empty banner",
			banner: "",
			want:   0,
		},
		{
			name:   "quoted token without digits",
			banner: "java version \"beta\"",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MajorVersion(tt.banner))
		})
	}
}

func TestQuotedVersionToken(t *testing.T) {
	assert.Equal(t, "11.0.2", quotedVersionToken("openjdk version \"11.0.2\" 2019-01-15"))
	assert.Equal(t, "", quotedVersionToken("no banner here"))
}
