package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWeekday(t *testing.T) {
	cases := []struct {
		token string
		want  int
	}{
		{"domingo", 0},
		{"segunda", 1},
		{"segunda-feira", 1},
		{"Terça", 2},
		{"terca", 2},
		{"QUARTA", 3},
		{"quinta", 4},
		{"sexta", 5},
		{"sábado", 6},
		{"sabado", 6},
		{"2a", 1},
		{"6a", 5},
		{"sab", 6},
		{"dom", 0},
		{"sunday", 0},
		{"Monday", 1},
		{"tuesday", 2},
		{"saturday", 6},
		{" sexta ", 5},
	}
	for _, c := range cases {
		got, ok := ResolveWeekday(c.token)
		assert.True(t, ok, "token %q should resolve", c.token)
		assert.Equal(t, c.want, got, "token %q", c.token)
	}
}

func TestResolveWeekdayUnknownToken(t *testing.T) {
	for _, token := range []string{"feriado", "8a", "", "lunes"} {
		_, ok := ResolveWeekday(token)
		assert.False(t, ok, "token %q should not resolve", token)
	}
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "domingo", DayName(0))
	assert.Equal(t, "sabado", DayName(6))
	assert.Equal(t, "", DayName(7))
	assert.Equal(t, "", DayName(-1))
}

func TestDayNameRoundTripsThroughResolver(t *testing.T) {
	for dow := 0; dow < 7; dow++ {
		got, ok := ResolveWeekday(DayName(dow))
		assert.True(t, ok)
		assert.Equal(t, dow, got)
	}
}
