package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// execute runs the root command with args against a throwaway config
// directory and a model name no encoding exists for, keeping tests off
// the network and out of the user's home.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append(args, "--config-dir", t.TempDir(), "--model", "no-such-model"))
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Short(t *testing.T) {
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "remem version test-version-1.0.0")
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	originalVersion := version
	version = "dev"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "remem version dev")
}

func TestInitRun_FallsBackToHeuristicCounter(t *testing.T) {
	_, err := execute(t, "version")

	assert.NoError(t, err)
	assert.NotNil(t, counter)
	assert.NotNil(t, configStore)
	assert.NotEmpty(t, runID)
}
