package utils

import "time"

// WorkingHours is the range of bookable slot starts in a day, in hours of
// the application location. Last is inclusive.
type WorkingHours struct {
	First int
	Last  int
}

// DefaultWorkingHours offers slots from 08:00 to 19:00.
var DefaultWorkingHours = WorkingHours{First: 8, Last: 19}

// Slots lists every slot start of the day containing t.
func (w WorkingHours) Slots(t time.Time, loc *time.Location) []time.Time {
	day := StartOfDay(t, loc)
	if w.Last < w.First {
		return nil
	}
	slots := make([]time.Time, 0, w.Last-w.First+1)
	for h := w.First; h <= w.Last; h++ {
		slots = append(slots, time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, day.Location()))
	}
	return slots
}

// Contains reports whether the slot starting at t falls within working hours.
func (w WorkingHours) Contains(t time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	h := t.In(loc).Hour()
	return h >= w.First && h <= w.Last
}
