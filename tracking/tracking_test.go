package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusIsDeterministic(t *testing.T) {
	for _, number := range []string{"TCS123", "ABC-999", "x", "0000000001"} {
		first, err := Status(number, "TCS", "Karachi")
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := Status(number, "TCS", "Karachi")
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestStatusSelectsFromCannedPhrases(t *testing.T) {
	courier, city := "Leopards Courier", "Lahore"
	var phrases []string
	for _, tmpl := range statusTemplates {
		phrases = append(phrases, tmpl(courier, city))
	}

	for _, number := range []string{"LP1", "LP2", "LP3", "track-42", "zz-top"} {
		status, err := Status(number, courier, city)
		require.NoError(t, err)
		assert.Contains(t, phrases, status)
	}
}

func TestStatusCyclesWithCharacterSum(t *testing.T) {
	// "a" and "ab" differ by one code point, so they land one phrase apart
	a, err := Status("a", "TCS", "Karachi")
	require.NoError(t, err)
	b, err := Status("b", "TCS", "Karachi")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBlankTrackingNumberRejected(t *testing.T) {
	for _, number := range []string{"", "   ", "\t\n"} {
		_, err := Status(number, "TCS", "Karachi")
		assert.ErrorIs(t, err, ErrEmptyTrackingNumber)
	}
}
