// Package schedule places accepted courses onto the fixed weekly grid and
// provides the day/time overlap test shared with the recommendation engine.
package schedule

import (
	"strconv"
	"strings"

	"github.com/iumatch/coursematch-backend/internal/model"
)

// Weekdays are the grid columns, Monday through Friday.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Slots are the hourly grid rows. A course lands in the slot whose start
// is <= its start time < start+60.
var Slots = []string{
	"8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// Placement is one grid cell: a course with its resolved time and room.
type Placement struct {
	CourseID string `json:"course_id"`
	Title    string `json:"title"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

// WeekGrid is the full weekly view. Cells is keyed day -> slot; absent
// keys are empty cells.
type WeekGrid struct {
	Days  []string                         `json:"days"`
	Slots []string                         `json:"slots"`
	Cells map[string]map[string]*Placement `json:"cells"`
}

// ClockToMinutes parses a 12-hour clock string like "8:00 AM" into minutes
// since midnight. Returns false for anything it cannot parse.
func ClockToMinutes(clock string) (int, bool) {
	fields := strings.Fields(strings.TrimSpace(clock))
	if len(fields) != 2 {
		return 0, false
	}
	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil || hours < 1 || hours > 12 {
		return 0, false
	}
	mins, err := strconv.Atoi(hm[1])
	if err != nil || mins < 0 || mins > 59 {
		return 0, false
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hours == 12 {
			hours = 0
		}
	case "PM":
		if hours != 12 {
			hours += 12
		}
	default:
		return 0, false
	}
	return hours*60 + mins, true
}

// interval is a parsed meeting time: weekday set plus start/end minutes.
type interval struct {
	days  []string
	start int
	end   int
}

func parseMeeting(mt *model.MeetingTimes) (interval, bool) {
	if mt == nil || len(mt.Days) == 0 {
		return interval{}, false
	}
	start, ok := ClockToMinutes(mt.StartTime)
	if !ok {
		return interval{}, false
	}
	end, ok := ClockToMinutes(mt.EndTime)
	if !ok {
		return interval{}, false
	}
	return interval{days: mt.Days, start: start, end: end}, true
}

// Overlaps reports whether two meeting times share a weekday and their
// time ranges intersect. Incomplete or unparseable meeting data on either
// side counts as no overlap; the scoring layer handles the unknown case
// separately.
func Overlaps(a, b *model.MeetingTimes) bool {
	ia, ok := parseMeeting(a)
	if !ok {
		return false
	}
	ib, ok := parseMeeting(b)
	if !ok {
		return false
	}

	sameDay := false
	for _, da := range ia.days {
		for _, db := range ib.days {
			if strings.EqualFold(da, db) {
				sameDay = true
				break
			}
		}
	}
	if !sameDay {
		return false
	}
	return ia.start < ib.end && ib.start < ia.end
}

// BuildWeekGrid places each accepted course into the weekly grid, one cell
// per meeting weekday. Courses whose start time falls outside every slot
// are omitted from the grid but remain in the enrolled list; overlapping
// placements simply overwrite earlier ones, since overlap avoidance is a
// scoring signal, not a placement rule.
func BuildWeekGrid(accepted []model.Course) WeekGrid {
	grid := WeekGrid{
		Days:  Weekdays,
		Slots: Slots,
		Cells: make(map[string]map[string]*Placement),
	}

	slotStarts := make([]int, len(Slots))
	for i, s := range Slots {
		m, _ := ClockToMinutes(s)
		slotStarts[i] = m
	}

	for _, course := range accepted {
		mt := course.MeetingTimes
		if mt == nil || len(mt.Days) == 0 {
			continue
		}
		start, ok := ClockToMinutes(mt.StartTime)
		if !ok {
			continue
		}

		slot := ""
		for i, lower := range slotStarts {
			if start >= lower && start < lower+60 {
				slot = Slots[i]
				break
			}
		}
		if slot == "" {
			continue
		}

		for _, day := range mt.Days {
			dayKey := canonicalDay(day)
			if dayKey == "" {
				continue
			}
			if grid.Cells[dayKey] == nil {
				grid.Cells[dayKey] = make(map[string]*Placement)
			}
			grid.Cells[dayKey][slot] = &Placement{
				CourseID: course.ID,
				Title:    course.Title,
				Time:     mt.StartTime + "-" + mt.EndTime,
				Location: mt.Location,
			}
		}
	}

	return grid
}

func canonicalDay(day string) string {
	for _, d := range Weekdays {
		if strings.EqualFold(d, day) {
			return d
		}
	}
	return ""
}
