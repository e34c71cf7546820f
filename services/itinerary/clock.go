package itinerary

// Window is a fixed clock-time interval within a day. Start and End are
// seconds from midnight; End may exceed 86400 when the window crosses into
// the next day (the overnight sleep window does).
type Window struct {
	Start int
	End   int
}

// Duration returns the window length in seconds.
func (w Window) Duration() int {
	return w.End - w.Start
}

// ClockTime converts a wall-clock hour/minute into seconds from midnight.
func ClockTime(hour, minute int) int {
	return (hour*60 + minute) * 60
}

// Clock holds the fixed daily windows the scheduler and merger work with.
// The same clock applies to every day of a trip.
type Clock struct {
	Morning   Window // morning sightseeing availability
	Afternoon Window // afternoon sightseeing availability
	Breakfast Window
	Lunch     Window
	Dinner    Window
	Sleep     Window // crosses midnight; End is on the following day
	CheckIn   Window // hotel check-in event, first day only
	CheckOut  Window // hotel check-out event, last day only
	// LateCheckOut replaces CheckOut when a trip is a single day: the
	// morning checkout slot would precede that day's check-in, so
	// departure moves to the evening.
	LateCheckOut Window
}

// DefaultClock returns the standard daily schedule: sightseeing 09:00-12:00
// and 13:00-17:00, three fixed meals, overnight sleep 22:30-07:00.
func DefaultClock() Clock {
	return Clock{
		Morning:      Window{ClockTime(9, 0), ClockTime(12, 0)},
		Afternoon:    Window{ClockTime(13, 0), ClockTime(17, 0)},
		Breakfast:    Window{ClockTime(8, 0), ClockTime(8, 45)},
		Lunch:        Window{ClockTime(12, 0), ClockTime(13, 0)},
		Dinner:       Window{ClockTime(18, 30), ClockTime(20, 0)},
		Sleep:        Window{ClockTime(22, 30), 24*3600 + ClockTime(7, 0)},
		CheckIn:      Window{ClockTime(15, 0), ClockTime(15, 30)},
		CheckOut:     Window{ClockTime(11, 0), ClockTime(11, 30)},
		LateCheckOut: Window{ClockTime(21, 0), ClockTime(21, 30)},
	}
}
