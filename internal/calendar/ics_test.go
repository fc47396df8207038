package calendar

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careergranny/internal/domain"
)

var stamp = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

func fixture() []domain.EventRecord {
	return []domain.EventRecord{
		{ID: 1, Title: "AI Workshop", Date: "2025-02-15", Category: "workshop", Status: "Open", Description: "Hands-on session", Link: "https://example.com/ai"},
		{ID: 2, Title: "Networking Night", Date: "2025-03-01", Category: "networking"},
	}
}

func TestBuildCreatesAllDayEvents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, fixture(), stamp))

	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, "event-1@careergranny", first.Id())
	assert.Equal(t, "AI Workshop", first.GetProperty(ical.ComponentPropertySummary).Value)

	start, err := first.GetAllDayStartAt()
	require.NoError(t, err)
	assert.Equal(t, "2025-02-15", start.Format(domain.DateLayout))

	end, err := first.GetAllDayEndAt()
	require.NoError(t, err)
	assert.Equal(t, "2025-02-16", end.Format(domain.DateLayout))

	assert.Nil(t, events[1].GetProperty(ical.ComponentPropertyDescription))
}

func TestBuildRejectsBadDate(t *testing.T) {
	events := fixture()
	events[1].Date = "March 1st"

	_, err := Build(events, stamp)
	assert.ErrorContains(t, err, "event 2")
}

func TestImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ics")
	require.NoError(t, ExportFile(path, fixture(), stamp))

	got, err := ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, fixture(), got)
}

func TestImportEmptyCalendar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, nil, stamp))

	_, err := Import(&buf)
	assert.ErrorIs(t, err, ErrNoEvents)
}

func TestImportFileMissing(t *testing.T) {
	_, err := ImportFile(filepath.Join(t.TempDir(), "missing.ics"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIDFromUID(t *testing.T) {
	id, ok := idFromUID("event-7@careergranny")
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	for _, uid := range []string{"abc@elsewhere", "event-x@careergranny", "event-0@careergranny", ""} {
		_, ok := idFromUID(uid)
		assert.False(t, ok, uid)
	}
}

func TestImportMixedUIDsKeepsIDsUnique(t *testing.T) {
	day := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)
	cal := ical.NewCalendar()
	add := func(uid, title string) {
		ev := cal.AddEvent(uid)
		ev.SetDtStampTime(stamp)
		ev.SetSummary(title)
		ev.SetAllDayStartAt(day)
		ev.AddProperty(ical.ComponentPropertyCategories, "workshop")
	}
	add("meetup-1@elsewhere", "Foreign One")
	add("event-1@careergranny", "Ours One")
	add("event-2@careergranny", "Ours Two")
	add("meetup-2@elsewhere", "Foreign Two")

	var buf bytes.Buffer
	require.NoError(t, cal.SerializeTo(&buf))

	got, err := Import(&buf)
	require.NoError(t, err)
	require.Len(t, got, 4)

	ids := make([]int, len(got))
	for i, e := range got {
		ids[i] = e.ID
	}
	assert.Equal(t, []int{3, 1, 2, 4}, ids)
	assert.Equal(t, "Foreign One", got[0].Title)
}
