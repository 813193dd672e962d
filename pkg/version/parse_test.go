package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"1.2.3", "1.2.3", false},
		{"v1.2.3", "1.2.3", false},
		{"18.17.0", "18.17.0", false},
		{"1.2", "1.2.0", false},
		{"1", "1.0.0", false},
		{"v22", "22.0.0", false},
		{"  v20.11.1\n", "20.11.1", false},
		{"", "", true},
		{"abc", "", true},
		{"1.2.3.4", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"v18.17.0", "18.17.0"},
		{"node v18.17.0", "18.17.0"},
		{"1.64.3", "1.64.3"},
		{"ffmpeg version 6.0-static https://johnvansickle.com/ffmpeg/", "6.0.0"},
		{"Python 3.11.4", "3.11.4"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Extract(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestExtractNoVersion(t *testing.T) {
	_, err := Extract("command not found")
	assert.ErrorContains(t, err, "no version found")
}

func TestMajor(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"v17.9.1", 17},
		{"v18.0.0", 18},
		{"v20.11.0\n", 20},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Major(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
