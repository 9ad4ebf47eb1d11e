package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoalert/videoalert/pkg/config"
)

func newListenCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "server"}
	addListenFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestApplyListenFlagsKeepsConfiguredValues(t *testing.T) {
	settings := &config.Settings{BindAddress: "127.0.0.1", Port: 9000}

	applyListenFlags(settings, newListenCommand(t))

	assert.Equal(t, "127.0.0.1", settings.BindAddress)
	assert.Equal(t, 9000, settings.Port)
}

func TestApplyListenFlagsOverridesWhenPassed(t *testing.T) {
	settings := &config.Settings{BindAddress: "127.0.0.1", Port: 9000}

	applyListenFlags(settings, newListenCommand(t, "--bind-address", "0.0.0.0", "--port", "8081"))

	assert.Equal(t, "0.0.0.0", settings.BindAddress)
	assert.Equal(t, 8081, settings.Port)
}

func TestApplyListenFlagsIgnoresUnparsablePort(t *testing.T) {
	settings := &config.Settings{Port: 9000}

	applyListenFlags(settings, newListenCommand(t, "--port", "not-a-port"))

	assert.Equal(t, 9000, settings.Port)
}
