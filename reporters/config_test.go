package reporters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEmptyBucket(t *testing.T) {
	cfg, err := Compile(nil)
	require.NoError(t, err)
	assert.Nil(t, cfg.Graphic)
	assert.Nil(t, cfg.StandardOut)
	assert.Nil(t, cfg.StandardErr)
	assert.Empty(t, cfg.Files)
	assert.Empty(t, cfg.Custom)
}

func TestCompileGraphicReporter(t *testing.T) {
	cfg, err := Compile([]string{"-g"})
	require.NoError(t, err)
	require.NotNil(t, cfg.Graphic)
	assert.Empty(t, cfg.Graphic.Filters)
}

func TestCompileGraphicReporterWithSuffix(t *testing.T) {
	cfg, err := Compile([]string{"-gL"})
	require.NoError(t, err)
	require.NotNil(t, cfg.Graphic)
	assert.Equal(t, FilterSet{SuppressSuiteCompleted: {}}, cfg.Graphic.Filters)
}

func TestCompileGraphicRejectsPresentationLetters(t *testing.T) {
	for _, tok := range []string{"-gW", "-gD"} {
		_, err := Compile([]string{tok})
		require.Error(t, err, "token %s", tok)
		assert.Contains(t, err.Error(), "presentation letters")
	}
}

func TestCompileStandardOutAndErr(t *testing.T) {
	cfg, err := Compile([]string{"-oYZ", "-eF"})
	require.NoError(t, err)
	require.NotNil(t, cfg.StandardOut)
	require.NotNil(t, cfg.StandardErr)
	assert.True(t, cfg.StandardOut.Filters.Has(SuppressRunStarting))
	assert.True(t, cfg.StandardOut.Filters.Has(SuppressTestStarting))
	assert.True(t, cfg.StandardErr.Filters.Has(SuppressTestFailed))
}

func TestCompileDanglingFileFlag(t *testing.T) {
	_, err := Compile([]string{"-f"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be followed by a file name")
}

func TestCompileDanglingCustomFlag(t *testing.T) {
	_, err := Compile([]string{"-r"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be followed by a reporter name")
}

func TestCompileDuplicateSingletons(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"duplicate standard-out", []string{"-o", "-o", "-g", "-e"}},
		{"duplicate standard-out with suffixes", []string{"-oYZ", "-oL"}},
		{"duplicate standard-err", []string{"-e", "-eL"}},
		{"duplicate graphic", []string{"-g", "-gL"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.tokens)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "only one")
		})
	}
}

func TestCompileRepeatableFileReporters(t *testing.T) {
	cfg, err := Compile([]string{"-f", "first.out", "-fLZ", "second.out"})
	require.NoError(t, err)
	require.Len(t, cfg.Files, 2)
	assert.Equal(t, "first.out", cfg.Files[0].Filename)
	assert.Empty(t, cfg.Files[0].Filters)
	assert.Equal(t, "second.out", cfg.Files[1].Filename)
	assert.True(t, cfg.Files[1].Filters.Has(SuppressSuiteCompleted))
	assert.True(t, cfg.Files[1].Filters.Has(SuppressTestStarting))
}

func TestCompileCustomReporters(t *testing.T) {
	cfg, err := Compile([]string{"-r", "slack", "-rT", "jira"})
	require.NoError(t, err)
	require.Len(t, cfg.Custom, 2)
	assert.Equal(t, "slack", cfg.Custom[0].Name)
	assert.Equal(t, "jira", cfg.Custom[1].Name)
	assert.True(t, cfg.Custom[1].Filters.Has(SuppressTestSucceeded))
}

func TestCompileUnrecognizedToken(t *testing.T) {
	_, err := Compile([]string{"bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized reporter argument")
}

func TestCompileBareDash(t *testing.T) {
	_, err := Compile([]string{"-"})
	require.Error(t, err)
}

func TestCompileInvalidSuffixLetters(t *testing.T) {
	_, err := Compile([]string{"-oQ"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid -o configuration")
}

// TestCompileMixedBucket runs a full reporter bucket as the classifier
// would hand it over.
func TestCompileMixedBucket(t *testing.T) {
	cfg, err := Compile([]string{"-g", "-g"})
	require.Error(t, err, "two graphic reporters must fail")
	assert.Nil(t, cfg)

	cfg, err = Compile([]string{"-oW", "-f", "file.out", "-eFD"})
	require.NoError(t, err)
	assert.NotNil(t, cfg.StandardOut)
	assert.NotNil(t, cfg.StandardErr)
	require.Len(t, cfg.Files, 1)
	assert.Equal(t, "file.out", cfg.Files[0].Filename)
}
