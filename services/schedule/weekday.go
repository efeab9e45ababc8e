// File: services/schedule/weekday.go
package schedule

import "strings"

// weekdayNames maps every accepted day token to its weekday index,
// Sunday = 0. Legacy schedules were keyed in Portuguese (full names and the
// short "2a".."6a" forms used in free-text availability lines), but some
// tenants were seeded with English keys, so both are accepted.
var weekdayNames = map[string]int{
	// Portuguese full names.
	"domingo": 0, "segunda": 1, "terca": 2, "terça": 2, "quarta": 3,
	"quinta": 4, "sexta": 5, "sabado": 6, "sábado": 6,
	// Portuguese short forms.
	"dom": 0, "seg": 1, "ter": 2, "qua": 3, "qui": 4, "sex": 5,
	"sab": 6, "sáb": 6,
	"2a": 1, "3a": 2, "4a": 3, "5a": 4, "6a": 5,
	// English names.
	"sunday": 0, "monday": 1, "tuesday": 2, "wednesday": 3,
	"thursday": 4, "friday": 5, "saturday": 6,
}

// canonical Portuguese names, used when reversing a migration.
var dayNames = [7]string{"domingo", "segunda", "terca", "quarta", "quinta", "sexta", "sabado"}

// ResolveWeekday maps a free-text day token to its weekday index (Sunday=0).
// Matching is case-insensitive and tolerates the "-feira" suffix
// ("segunda-feira" resolves the same as "segunda"). Unrecognized tokens
// return ok=false; callers log and skip them rather than aborting.
func ResolveWeekday(token string) (int, bool) {
	key := strings.ToLower(strings.TrimSpace(token))
	key = strings.TrimSuffix(key, "-feira")
	dow, ok := weekdayNames[key]
	return dow, ok
}

// DayName returns the canonical Portuguese name for a weekday index.
func DayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ""
	}
	return dayNames[dayOfWeek]
}
