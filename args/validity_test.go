package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValidityWellFormedVector(t *testing.T) {
	err := CheckValidity([]string{
		"-p", "dir",
		"-g",
		"-oYZ",
		"-f", "file.out",
		"-s", "MySuite",
		"-Dname=value",
		"-n", "Cat Dog",
		"-x", "Slow",
		"-c",
		"-m", "com.example.suites",
		"-w", "com.example",
		"-t", "testng.xml",
	})
	assert.NoError(t, err)
}

func TestCheckValidityEmptyVector(t *testing.T) {
	assert.NoError(t, CheckValidity([]string{}))
}

func TestCheckValidityNilVector(t *testing.T) {
	require.ErrorIs(t, CheckValidity(nil), ErrNilArgumentVector)
}

func TestCheckValidityMalformedVectors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"unrecognized flag", []string{"-q"}},
		{"dangling -f", []string{"-f"}},
		{"property without equals", []string{"-Dnovalue"}},
		{"unknown reporter letter", []string{"-oQ"}},
		{"duplicate standard-out reporter", []string{"-o", "-o"}},
		{"invalid package path", []string{"-m", "com/../evil"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, CheckValidity(tt.argv))
		})
	}
}

// TestCheckValidityIsIdempotent runs the check twice over the same vector
// and expects identical outcomes; the check must not keep state.
func TestCheckValidityIsIdempotent(t *testing.T) {
	valid := []string{"-g", "-s", "MySuite"}
	assert.NoError(t, CheckValidity(valid))
	assert.NoError(t, CheckValidity(valid))

	invalid := []string{"-o", "-o"}
	first := CheckValidity(invalid)
	second := CheckValidity(invalid)
	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}
