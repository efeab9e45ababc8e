package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTimesCommaAndESeparators(t *testing.T) {
	times := ExtractTimes("2a - 8:00, 10:00, 16:00 e 19:30")
	assert.Equal(t, []string{"08:00", "10:00", "16:00", "19:30"}, times)
}

func TestExtractTimesLongList(t *testing.T) {
	times := ExtractTimes("6a - 08:00, 09:00, 10:00, 11:00, 15:00, 16:00, 17:00, 18:00, 19:00, 21:00")
	assert.Equal(t, []string{
		"08:00", "09:00", "10:00", "11:00", "15:00",
		"16:00", "17:00", "18:00", "19:00", "21:00",
	}, times)
}

func TestExtractTimesHourPadding(t *testing.T) {
	assert.Equal(t, []string{"06:00", "08:30"}, ExtractTimes("3a - 6:00, 8:30"))
}

func TestExtractTimesHFormToken(t *testing.T) {
	// "6h30" marks the start of a range; only the start is kept.
	assert.Equal(t, []string{"06:30"}, ExtractTimes("4a - 6h30"))
}

func TestExtractTimesColonRangeKeepsStartOnly(t *testing.T) {
	assert.Equal(t, []string{"08:00"}, ExtractTimes("5a - 8:00 às 12:00"))
}

func TestExtractTimesHFormRangeEmitsBothEndpoints(t *testing.T) {
	// The h-form range emits both endpoints as discrete start times,
	// unlike the colon form above. Legacy data depends on the asymmetry.
	assert.Equal(t, []string{"06:30", "07:30"}, ExtractTimes("4a - 6h30 às 7h30"))
}

func TestExtractTimesDeduplicatesAndSorts(t *testing.T) {
	assert.Equal(t, []string{"08:00", "10:00"}, ExtractTimes("2a - 10:00, 8:00, 08:00"))
}

func TestExtractTimesMalformedLine(t *testing.T) {
	assert.Nil(t, ExtractTimes("invalid line"))
	assert.Nil(t, ExtractTimes(""))
}

func TestExtractTimesUnparseableTokensContributeNothing(t *testing.T) {
	assert.Equal(t, []string{"08:00"}, ExtractTimes("2a - manhã, 8:00, tarde"))
}

func TestExtractTimesMinutesNotRangeChecked(t *testing.T) {
	// Out-of-range minutes pass through uncorrected; migrated data must
	// round-trip byte-for-byte.
	assert.Equal(t, []string{"08:75"}, ExtractTimes("2a - 8:75"))
}

func TestParseAvailabilityLineDayToken(t *testing.T) {
	day, times, ok := ParseAvailabilityLine("2a - 8:00, 10:00")
	assert.True(t, ok)
	assert.Equal(t, "2a", day)
	assert.Equal(t, []string{"08:00", "10:00"}, times)
}

func TestParseAvailabilityLineHyphenatedDayName(t *testing.T) {
	// The internal hyphen of "-feira" day names must not be mistaken for
	// the day/time separator; only a whitespace-delimited dash splits the
	// line. Every listed time survives, including the first.
	day, times, ok := ParseAvailabilityLine("segunda-feira - 13:00, 14:00 e 15:00")
	assert.True(t, ok)
	assert.Equal(t, "segunda-feira", day)
	assert.Equal(t, []string{"13:00", "14:00", "15:00"}, times)

	day, times, ok = ParseAvailabilityLine("quinta-feira - 09:00, 10:00 e 11:00")
	assert.True(t, ok)
	assert.Equal(t, "quinta-feira", day)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, times)
}
