package domain

import (
	"fmt"
	"time"
)

// Itinerary maps day keys ("day1".."dayN") to per-slot plans. It is stored
// as an opaque JSON document; clients may overwrite it wholesale.
type Itinerary map[string]DayPlan

// DayPlan maps a time-slot name ("morning", "afternoon", "evening") to its plan.
type DayPlan map[string]SlotPlan

// SlotPlan is a single schedulable block within a day.
type SlotPlan struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// Fixed display labels for the three daily slots.
var slotTimes = []struct {
	name string
	time string
}{
	{"morning", "9:00 AM - 12:00 PM"},
	{"afternoon", "1:00 PM - 5:00 PM"},
	{"evening", "6:00 PM - 10:00 PM"},
}

const placeholderActivity = "Plan your activity"

// DefaultItinerary builds the template itinerary for a trip's date range:
// one entry per day with three placeholder slots. It is a pure function of
// the two dates and returns a fresh structure on every call.
func DefaultItinerary(start, end time.Time) Itinerary {
	duration := durationDays(start, end)

	it := make(Itinerary, duration)
	for day := 1; day <= duration; day++ {
		plan := make(DayPlan, len(slotTimes))
		for _, slot := range slotTimes {
			plan[slot.name] = SlotPlan{
				Time:     slot.time,
				Activity: placeholderActivity,
			}
		}
		it[fmt.Sprintf("day%d", day)] = plan
	}
	return it
}

// durationDays is the inclusive whole-day count between start and end,
// clamped to a minimum of 1.
func durationDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
