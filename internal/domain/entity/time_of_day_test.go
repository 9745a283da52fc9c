package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	parsed, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30}, parsed)

	parsed, err = ParseTimeOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{}, parsed)

	parsed, err = ParseTimeOfDay("23:59")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 23, Minute: 59}, parsed)
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	for _, input := range []string{"", "9:30am", "25:00", "12:60", "noon"} {
		_, err := ParseTimeOfDay(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "00:00", TimeOfDay{}.String())
	assert.Equal(t, "23:59", TimeOfDay{Hour: 23, Minute: 59}.String())
}

func TestTimeOfDay_Ordering(t *testing.T) {
	early := TimeOfDay{Hour: 8, Minute: 0}
	late := TimeOfDay{Hour: 20, Minute: 30}

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.Before(early))
	assert.False(t, early.After(early))
}

func TestTimeOfDayFrom(t *testing.T) {
	instant := time.Date(2025, 6, 1, 14, 45, 59, 0, time.UTC)

	assert.Equal(t, TimeOfDay{Hour: 14, Minute: 45}, TimeOfDayFrom(instant))
}
