package specrun

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/log"

	"github.com/specrun/specrun/flags"
)

// testCliContext builds a cli context with the service flags registered.
func testCliContext(t *testing.T, values map[string]string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String(flags.DefaultsFile.Name, "", "")
	set.Duration(flags.RunInterval.Name, 0, "")
	for name, value := range values {
		require.NoError(t, set.Set(name, value))
	}
	return cli.NewContext(nil, set, nil)
}

func TestNewConfigClassifiesAndCompiles(t *testing.T) {
	ctx := testCliContext(t, nil)
	cfg, err := NewConfig(ctx, log.New(), []string{
		"-p", "serviceuitest-1.1beta4.jar myjini",
		"-oW",
		"-s", "FirstSuite",
		"-s", "SecondSuite",
		"-t", "testng.xml",
		"-Dserver=192.168.1.188",
		"-n", "Cat Dog",
		"-x", "Slow",
		"-c",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"FirstSuite", "SecondSuite", "testng.xml"}, cfg.Plan.Suites)
	assert.Equal(t, []string{"serviceuitest-1.1beta4.jar", "myjini"}, cfg.Plan.Runpath)
	assert.Equal(t, map[string]struct{}{"Cat": {}, "Dog": {}}, cfg.Plan.IncludeTags)
	assert.Equal(t, map[string]struct{}{"Slow": {}}, cfg.Plan.ExcludeTags)
	assert.True(t, cfg.Plan.Concurrent)
	assert.Equal(t, map[string]string{"server": "192.168.1.188"}, cfg.Properties)
	require.NotNil(t, cfg.Reporters.StandardOut)
	assert.True(t, cfg.RunOnce)
}

func TestNewConfigRejectsMalformedVector(t *testing.T) {
	ctx := testCliContext(t, nil)
	_, err := NewConfig(ctx, log.New(), []string{"-o", "-o"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument vector")
}

func TestNewConfigNilVectorMeansEmpty(t *testing.T) {
	ctx := testCliContext(t, nil)
	cfg, err := NewConfig(ctx, log.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Argv)
	assert.Empty(t, cfg.Plan.Suites)
}

func TestNewConfigRunInterval(t *testing.T) {
	ctx := testCliContext(t, map[string]string{flags.RunInterval.Name: "30m"})
	cfg, err := NewConfig(ctx, log.New(), []string{"-s", "MySuite"})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.RunInterval)
	assert.False(t, cfg.RunOnce)
}

func TestNewConfigMergesDefaultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte("args:\n  - \"-oW\"\n  - \"-c\"\n"), 0644))

	ctx := testCliContext(t, map[string]string{flags.DefaultsFile.Name: path})
	cfg, err := NewConfig(ctx, log.New(), []string{"-s", "MySuite"})
	require.NoError(t, err)

	assert.Equal(t, []string{"-oW", "-c", "-s", "MySuite"}, cfg.Argv)
	assert.True(t, cfg.Plan.Concurrent)
	require.NotNil(t, cfg.Reporters.StandardOut)
}

func TestNewConfigMissingDefaultsFile(t *testing.T) {
	ctx := testCliContext(t, map[string]string{flags.DefaultsFile.Name: "/nonexistent/defaults.yaml"})
	_, err := NewConfig(ctx, log.New(), []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read defaults file")
}

func TestRunpathEntries(t *testing.T) {
	entries := RunpathEntries([]string{
		"-p",
		`"serviceuitest-1.1beta4.jar myjini http://myhost:9998/myfile.jar"`,
		"-p",
	})
	assert.Equal(t, []string{
		"serviceuitest-1.1beta4.jar",
		"myjini",
		"http://myhost:9998/myfile.jar",
	}, entries)
}

func TestRunpathEntriesEmptyBucket(t *testing.T) {
	assert.Empty(t, RunpathEntries(nil))
}
