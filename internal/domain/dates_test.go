package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2021, time.March, 14)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2021-03-14"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2021-03-14"`), &parsed))
	assert.Equal(t, d, parsed)
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"14.03.2021"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestYearMonth_JSON(t *testing.T) {
	ym := NewYearMonth(1970, time.January)

	data, err := json.Marshal(ym)
	require.NoError(t, err)
	assert.Equal(t, `"1970-01"`, string(data))

	var parsed YearMonth
	require.NoError(t, json.Unmarshal([]byte(`"1970-01"`), &parsed))
	assert.Equal(t, ym, parsed)
}

func TestYearMonth_LenientFullDateFallback(t *testing.T) {
	// A full date is accepted and reduced to its month.
	var ym YearMonth
	require.NoError(t, json.Unmarshal([]byte(`"1970-01-23"`), &ym))
	assert.Equal(t, NewYearMonth(1970, time.January), ym)
}

func TestYearMonth_Ordering(t *testing.T) {
	birth := NewYearMonth(1970, time.January)
	death := NewYearMonth(2020, time.June)

	assert.True(t, death.After(birth))
	assert.True(t, birth.Before(death))
	assert.False(t, birth.After(birth))
}

func TestPeriod_IsClosed(t *testing.T) {
	start := NewDate(2021, time.January, 1)
	end := NewDate(2021, time.June, 30)

	assert.False(t, Period{Start: start}.IsClosed())
	assert.True(t, Period{Start: start, End: &end}.IsClosed())
}
