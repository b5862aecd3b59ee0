package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthlyCronSchedule(t *testing.T) {
	t.Run("full expression", func(t *testing.T) {
		day, hour, minute, err := ParseMonthlyCronSchedule("30 6 5 * *")
		require.NoError(t, err)
		assert.Equal(t, 5, day)
		assert.Equal(t, 6, hour)
		assert.Equal(t, 30, minute)
	})

	t.Run("empty expression falls back to defaults", func(t *testing.T) {
		day, hour, minute, err := ParseMonthlyCronSchedule("")
		require.NoError(t, err)
		assert.Equal(t, 1, day)
		assert.Equal(t, 3, hour)
		assert.Equal(t, 0, minute)
	})

	t.Run("wildcards keep defaults", func(t *testing.T) {
		day, hour, minute, err := ParseMonthlyCronSchedule("* * * * *")
		require.NoError(t, err)
		assert.Equal(t, 1, day)
		assert.Equal(t, 3, hour)
		assert.Equal(t, 0, minute)
	})

	t.Run("day past 28 rejected", func(t *testing.T) {
		_, _, _, err := ParseMonthlyCronSchedule("0 3 31 * *")
		assert.Error(t, err)
	})

	t.Run("minute out of range rejected", func(t *testing.T) {
		_, _, _, err := ParseMonthlyCronSchedule("75 3 1 * *")
		assert.Error(t, err)
	})
}
