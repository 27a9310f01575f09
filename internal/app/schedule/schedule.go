// Package schedule lays enrolled courses out over a simulated class day.
package schedule

import (
	"time"

	"github.com/yigit/unirecords/internal/app/models"
)

const (
	// BlockLength is the duration of every scheduled class
	BlockLength = 120 * time.Minute
	// MorningSlots is how many courses are placed after the morning anchor
	MorningSlots = 2
)

// Entry is one course placed in a time block
type Entry struct {
	Course    *models.Course
	StartTime time.Time
	EndTime   time.Time
}

// MorningAnchor returns 08:30 on the given day, in the day's location
func MorningAnchor(day time.Time) time.Time {
	return atClock(day, 8, 30)
}

// AfternoonAnchor returns 16:00 on the given day, in the day's location
func AfternoonAnchor(day time.Time) time.Time {
	return atClock(day, 16, 0)
}

func atClock(day time.Time, hour, minute int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, day.Location())
}

// Generate assigns consecutive two-hour blocks to courses, in input order.
// The first MorningSlots courses start at the morning anchor; all later
// courses start at the afternoon anchor with no upper bound, so a long list
// runs past midnight. Only the calendar date of day is used.
func Generate(courses []*models.Course, day time.Time) []Entry {
	entries := make([]Entry, 0, len(courses))
	morning, afternoon := MorningAnchor(day), AfternoonAnchor(day)

	var morningCount, afternoonCount int
	for _, course := range courses {
		var start time.Time
		if morningCount < MorningSlots {
			start = morning.Add(time.Duration(morningCount) * BlockLength)
			morningCount++
		} else {
			start = afternoon.Add(time.Duration(afternoonCount) * BlockLength)
			afternoonCount++
		}
		entries = append(entries, Entry{
			Course:    course,
			StartTime: start,
			EndTime:   start.Add(BlockLength),
		})
	}

	return entries
}
