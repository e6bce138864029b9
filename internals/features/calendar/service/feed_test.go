package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentModel "studioe_backend/internals/features/content/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsValidFeedType(t *testing.T) {
	assert.True(t, IsValidFeedType("events"))
	assert.True(t, IsValidFeedType("classes"))
	assert.False(t, IsValidFeedType("lessons"))
	assert.False(t, IsValidFeedType(""))
	assert.False(t, IsValidFeedType("Events"))
}

func TestDateTimeTuple(t *testing.T) {
	tuple, err := DateTimeTuple(date(2025, time.May, 15), "18:00")
	require.NoError(t, err)
	// month is 1-indexed
	assert.Equal(t, [5]int{2025, 5, 15, 18, 0}, tuple)

	tuple, err = DateTimeTuple(date(2024, time.January, 3), "09:45")
	require.NoError(t, err)
	assert.Equal(t, [5]int{2024, 1, 3, 9, 45}, tuple)

	_, err = DateTimeTuple(date(2025, time.May, 15), "late")
	assert.Error(t, err)
	_, err = DateTimeTuple(date(2025, time.May, 15), "25:00")
	assert.Error(t, err)
	_, err = DateTimeTuple(date(2025, time.May, 15), "18:61")
	assert.Error(t, err)
}

func TestBuildEventsCalendar(t *testing.T) {
	end := date(2025, time.May, 16)
	events := []contentModel.EventModel{
		{
			EventID:        uuid.New(),
			EventTitle:     "Salsa Social",
			EventLocation:  "Grand Ballroom",
			EventDate:      date(2025, time.May, 15),
			EventStartTime: "18:00",
			EventEndTime:   "21:00",
			EventApproved:  true,
		},
		{
			EventID:        uuid.New(),
			EventTitle:     "Bachata Weekend",
			EventDate:      date(2025, time.May, 15),
			EventDateEnd:   &end,
			EventStartTime: "19:30",
			EventEndTime:   "01:00",
			EventApproved:  true,
		},
	}

	doc, err := BuildEventsCalendar(events)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(doc, "BEGIN:VEVENT"))
	assert.Contains(t, doc, "DTSTART:20250515T180000Z")
	assert.Contains(t, doc, "DTEND:20250515T210000Z")
	// multi-day event ends on its explicit end date
	assert.Contains(t, doc, "DTSTART:20250515T193000Z")
	assert.Contains(t, doc, "DTEND:20250516T010000Z")
	assert.Contains(t, doc, "SUMMARY:Salsa Social")
	assert.Contains(t, doc, "LOCATION:Grand Ballroom")
	assert.Contains(t, doc, "UID:event-"+events[0].EventID.String()+"@joinstudioe.com")
}

func TestBuildEventsCalendarEmpty(t *testing.T) {
	doc, err := BuildEventsCalendar(nil)
	require.NoError(t, err)
	assert.Contains(t, doc, "BEGIN:VCALENDAR")
	assert.Contains(t, doc, "END:VCALENDAR")
	assert.NotContains(t, doc, "BEGIN:VEVENT")
}

func TestBuildClassesCalendarOccurrences(t *testing.T) {
	classes := []contentModel.ClassModel{
		{
			ClassID:        uuid.New(),
			ClassTitle:     "Beginner Salsa",
			ClassWeekday:   int(time.Tuesday),
			ClassStartTime: "18:00",
			ClassEndTime:   "19:00",
			ClassApproved:  true,
		},
	}

	// 2025-05-15 is a Thursday; first occurrence lands on Tuesday 2025-05-20.
	doc, err := BuildClassesCalendar(classes, date(2025, time.May, 15))
	require.NoError(t, err)

	assert.Equal(t, classOccurrences, strings.Count(doc, "BEGIN:VEVENT"))
	assert.Contains(t, doc, "DTSTART:20250520T180000Z")
	assert.Contains(t, doc, "DTSTART:20250527T180000Z")
}

func TestEnsureCalendarHeaders(t *testing.T) {
	bare := "BEGIN:VCALENDAR\r\nBEGIN:VEVENT\r\nEND:VEVENT\r\nEND:VCALENDAR\r\n"

	doc := EnsureCalendarHeaders(bare, FeedEvents)
	lines := strings.Split(doc, "\r\n")
	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	// injected immediately after the header
	assert.Equal(t, "VERSION:2.0", lines[1])
	assert.Contains(t, doc, "PRODID:"+FeedProductID)
	assert.Contains(t, doc, "CALSCALE:GREGORIAN")
	assert.Contains(t, doc, "METHOD:PUBLISH")
	assert.Contains(t, doc, "X-WR-CALNAME:Studio E Events")
	assert.Contains(t, doc, "X-WR-TIMEZONE:America/Chicago")

	// idempotent: a second pass changes nothing
	assert.Equal(t, doc, EnsureCalendarHeaders(doc, FeedEvents))
}

func TestEnsureCalendarHeadersKeepsExisting(t *testing.T) {
	withVersion := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"
	doc := EnsureCalendarHeaders(withVersion, FeedClasses)
	assert.Equal(t, 1, strings.Count(doc, "VERSION:2.0"))
	assert.Contains(t, doc, "X-WR-CALNAME:Studio E Classes")
}
