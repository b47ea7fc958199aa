package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"github.com/supuni9622/crm-application/internal/logging"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("invalid level", func(t *testing.T) {
		_, err := logging.Setup(logging.Options{Level: "chatty"})
		require.Error(t, err)
	})

	t.Run("file sink", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "crm.log")
		closer, err := logging.Setup(logging.Options{Level: "debug", File: path})
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

		log.Info().Str("component", "test").Msg("hello")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), `"message":"hello"`)
		require.Contains(t, string(data), `"component":"test"`)
	})
}
