package commands_test

import (
	"testing"
	"time"

	"gasline/internal/core/application/usecases/commands"
	"gasline/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReleaseStaleAssignmentsCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		actor := dispatcherActor(t)

		cmd, err := commands.NewReleaseStaleAssignmentsCommand(15*time.Minute, actor)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 15*time.Minute, cmd.MaxAge())
		assert.Equal(t, actor, cmd.Actor())
	})

	t.Run("should fail with non-positive max age", func(t *testing.T) {
		for _, maxAge := range []time.Duration{0, -time.Minute} {
			_, err := commands.NewReleaseStaleAssignmentsCommand(maxAge, dispatcherActor(t))
			require.Error(t, err, maxAge.String())
		}
	})

	t.Run("should fail with a non-dispatcher actor", func(t *testing.T) {
		_, err := commands.NewReleaseStaleAssignmentsCommand(15*time.Minute, driverActor(t, kernel.NewUUID()))

		require.Error(t, err)
	})
}
