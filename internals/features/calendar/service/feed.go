package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	contentModel "studioe_backend/internals/features/content/model"
)

const (
	FeedProductID = "-//Studio E//Calendar//EN"
	feedDomain    = "joinstudioe.com"
	feedTimezone  = "America/Chicago"

	organizerEmail = "events@joinstudioe.com"
	organizerName  = "Studio E"

	classOccurrences = 8
)

// FeedType allow-list; anything else is a 400 at the controller.
const (
	FeedEvents  = "events"
	FeedClasses = "classes"
)

func IsValidFeedType(t string) bool {
	return t == FeedEvents || t == FeedClasses
}

// DateTimeTuple decomposes a stored date plus an "HH:MM" time-of-day string
// into [year, month, day, hour, minute]. Month is calendar-conventional
// 1-indexed, matching what calendar clients expect.
func DateTimeTuple(date time.Time, hhmm string) ([5]int, error) {
	hour, minute, err := parseClock(hhmm)
	if err != nil {
		return [5]int{}, err
	}
	return [5]int{date.Year(), int(date.Month()), date.Day(), hour, minute}, nil
}

func parseClock(hhmm string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time of day %q", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", hhmm)
	}
	return hour, minute, nil
}

func tupleTime(t [5]int) time.Time {
	return time.Date(t[0], time.Month(t[1]), t[2], t[3], t[4], 0, 0, time.UTC)
}

// BuildEventsCalendar emits one VEVENT per approved event row. The end tuple
// comes from event_date_end when set, otherwise the start date.
func BuildEventsCalendar(events []contentModel.EventModel) (string, error) {
	cal := newCalendar()

	for i := range events {
		ev := &events[i]

		start, err := DateTimeTuple(ev.EventDate, ev.EventStartTime)
		if err != nil {
			return "", fmt.Errorf("event %s: %w", ev.EventID, err)
		}
		endDate := ev.EventDate
		if ev.EventDateEnd != nil {
			endDate = *ev.EventDateEnd
		}
		end, err := DateTimeTuple(endDate, ev.EventEndTime)
		if err != nil {
			return "", fmt.Errorf("event %s: %w", ev.EventID, err)
		}

		uid := fmt.Sprintf("event-%s@%s", ev.EventID, feedDomain)
		vevent := cal.AddEvent(uid)
		vevent.SetDtStampTime(time.Now().UTC())
		vevent.SetStartAt(tupleTime(start))
		vevent.SetEndAt(tupleTime(end))
		vevent.SetSummary(ev.EventTitle)
		if ev.EventDescription != "" {
			vevent.SetDescription(ev.EventDescription)
		}
		if ev.EventLocation != "" {
			vevent.SetLocation(ev.EventLocation)
		}
		vevent.SetOrganizer("mailto:"+organizerEmail, ics.WithCN(organizerName))
	}

	return EnsureCalendarHeaders(cal.Serialize(), FeedEvents), nil
}

// BuildClassesCalendar materializes the next N weekly occurrences of each
// approved class starting from `from`.
func BuildClassesCalendar(classes []contentModel.ClassModel, from time.Time) (string, error) {
	cal := newCalendar()

	for i := range classes {
		cl := &classes[i]

		startHour, startMin, err := parseClock(cl.ClassStartTime)
		if err != nil {
			return "", fmt.Errorf("class %s: %w", cl.ClassID, err)
		}
		endHour, endMin, err := parseClock(cl.ClassEndTime)
		if err != nil {
			return "", fmt.Errorf("class %s: %w", cl.ClassID, err)
		}

		first := nextWeekday(from, time.Weekday(cl.ClassWeekday))
		for n := 0; n < classOccurrences; n++ {
			day := first.AddDate(0, 0, 7*n)
			start := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, time.UTC)
			end := time.Date(day.Year(), day.Month(), day.Day(), endHour, endMin, 0, 0, time.UTC)

			uid := fmt.Sprintf("class-%s-%s@%s", cl.ClassID, day.Format("20060102"), feedDomain)
			vevent := cal.AddEvent(uid)
			vevent.SetDtStampTime(time.Now().UTC())
			vevent.SetStartAt(start)
			vevent.SetEndAt(end)
			vevent.SetSummary(cl.ClassTitle)
			if cl.ClassDescription != "" {
				vevent.SetDescription(cl.ClassDescription)
			}
			if cl.ClassLocation != "" {
				vevent.SetLocation(cl.ClassLocation)
			}
			vevent.SetOrganizer("mailto:"+organizerEmail, ics.WithCN(organizerName))
		}
	}

	return EnsureCalendarHeaders(cal.Serialize(), FeedClasses), nil
}

func newCalendar() *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(FeedProductID)
	return cal
}

func nextWeekday(from time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, days)
}

// EnsureCalendarHeaders injects the metadata lines subscription clients
// expect (display name in particular) right after BEGIN:VCALENDAR when the
// generator did not emit them.
func EnsureCalendarHeaders(serialized, feedType string) string {
	required := []string{
		"VERSION:2.0",
		"PRODID:" + FeedProductID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Studio E " + titleCase(feedType),
		"X-WR-CALDESC:Dance " + feedType + " from Studio E",
		"X-WR-TIMEZONE:" + feedTimezone,
	}

	var missing []string
	for _, line := range required {
		prop := line[:strings.Index(line, ":")+1]
		if !containsLine(serialized, prop) {
			missing = append(missing, line)
		}
	}
	if len(missing) == 0 {
		return serialized
	}

	const header = "BEGIN:VCALENDAR\r\n"
	idx := strings.Index(serialized, header)
	if idx < 0 {
		return serialized
	}
	insertAt := idx + len(header)
	return serialized[:insertAt] + strings.Join(missing, "\r\n") + "\r\n" + serialized[insertAt:]
}

func containsLine(doc, prefix string) bool {
	for _, line := range strings.Split(doc, "\r\n") {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
