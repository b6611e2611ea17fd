package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dev stays bare", "dev", "dev"},
		{"empty stays empty", "", ""},
		{"bare version gets prefix", "1.2.3", "v1.2.3"},
		{"prefixed version unchanged", "v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.input))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() {
		version, commit, date = origVersion, origCommit, origDate
	}()

	SetVersionInfo("1.2.3", "abc1234", "2026-01-01")

	assert.Equal(t, "1.2.3", GetVersion())
	assert.Equal(t, "abc1234", commit)
	assert.Equal(t, "2026-01-01", date)
}
