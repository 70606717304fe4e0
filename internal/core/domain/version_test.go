package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kubesetup/internal/core/domain"
)

func TestParseSpecifier(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      domain.Specifier
		wantPatch bool
	}{
		{
			name:  "latest",
			input: "latest",
			want:  domain.Specifier{Raw: "latest", Latest: true},
		},
		{
			name:  "latest mixed case with spaces",
			input: "  LaTeSt ",
			want:  domain.Specifier{Raw: "latest", Latest: true},
		},
		{
			name:  "major minor",
			input: "1.27",
			want:  domain.Specifier{Raw: "1.27", Major: "1", Minor: "27"},
		},
		{
			name:  "major minor with prefix",
			input: "v1.27",
			want:  domain.Specifier{Raw: "v1.27", Major: "1", Minor: "27"},
		},
		{
			name:      "full version",
			input:     "1.27.15",
			want:      domain.Specifier{Raw: "1.27.15", Major: "1", Minor: "27", Patch: "15"},
			wantPatch: true,
		},
		{
			name:      "full version trimmed",
			input:     " v1.27.15\n",
			want:      domain.Specifier{Raw: "v1.27.15", Major: "1", Minor: "27", Patch: "15"},
			wantPatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseSpecifier(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPatch, got.HasPatch())
		})
	}
}

func TestParseSpecifier_Invalid(t *testing.T) {
	inputs := []string{"abc", "1", "1.2.3.4", "", "v", "1.x", "1.2.", "vv1.2", "1.2-rc.1", "latest-ish"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := domain.ParseSpecifier(input)
			require.Error(t, err)

			var invalid *domain.InvalidSpecifierError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, input, invalid.Input)
			assert.Contains(t, err.Error(), `"`+input+`"`)
			assert.Contains(t, err.Error(), "major.minor")
			assert.Contains(t, err.Error(), "major.minor.patch")
		})
	}
}

func TestSpecifier_MajorMinor(t *testing.T) {
	s, err := domain.ParseSpecifier("v1.30")
	require.NoError(t, err)
	assert.Equal(t, "1.30", s.MajorMinor())
}

func TestEnsureVPrefix(t *testing.T) {
	assert.Equal(t, "v1.27.15", domain.EnsureVPrefix("1.27.15"))
	assert.Equal(t, "v1.27.15", domain.EnsureVPrefix("v1.27.15"))
}

func TestIsLatest(t *testing.T) {
	assert.True(t, domain.IsLatest("LATEST"))
	assert.True(t, domain.IsLatest(" latest\t"))
	assert.False(t, domain.IsLatest("1.27"))
}
