package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSeedNeedsConfirmation(t *testing.T) {
	_, err := execute("seed")
	assert.ErrorIs(t, err, errNotConfirmed)
}

func TestAccountCreateFlags(t *testing.T) {
	t.Run("required flags", func(t *testing.T) {
		_, err := execute("account", "create", "--name", "Asha")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required flag")
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := execute("account", "create",
			"--name", "Asha", "--email", "asha@example.com", "--password", "secret1", "--role", "owner")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown role "owner"`)
	})
}

func TestUnknownCommand(t *testing.T) {
	_, err := execute("migrate")
	assert.Error(t, err)
}
