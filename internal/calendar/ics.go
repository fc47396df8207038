// Package calendar converts the event catalog to and from iCalendar so
// events can be added to a personal calendar or maintained in one.
package calendar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"careergranny/internal/domain"
	appLog "careergranny/internal/log"
)

const (
	productID = "-//Career Granny//Events//EN"
	uidSuffix = "@careergranny"
	// statusProperty carries the registration label, which has no standard iCalendar field
	statusProperty = ical.ComponentProperty("X-CAREERGRANNY-STATUS")
	iconProperty   = ical.ComponentProperty("X-CAREERGRANNY-ICON")
)

var ErrNoEvents = errors.New("calendar contains no events")

// UID is the stable iCalendar identifier of an event
func UID(e domain.EventRecord) string {
	return fmt.Sprintf("event-%d%s", e.ID, uidSuffix)
}

// Build creates an all-day VEVENT per event. stamp is written as DTSTAMP.
func Build(events []domain.EventRecord, stamp time.Time) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		day, err := e.Day()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", e.ID, err)
		}

		ev := cal.AddEvent(UID(e))
		ev.SetDtStampTime(stamp.UTC())
		ev.SetSummary(e.Title)
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Link != "" {
			ev.SetURL(e.Link)
		}
		if e.Category != "" {
			ev.AddProperty(ical.ComponentPropertyCategories, e.Category)
		}
		if e.Status != "" {
			ev.AddProperty(statusProperty, e.Status)
		}
		if e.Icon != "" {
			ev.AddProperty(iconProperty, e.Icon)
		}
	}
	return cal, nil
}

// Export writes events as an iCalendar document
func Export(w io.Writer, events []domain.EventRecord, stamp time.Time) error {
	cal, err := Build(events, stamp)
	if err != nil {
		return err
	}
	return cal.SerializeTo(w)
}

// ExportFile writes events to path
func ExportFile(path string, events []domain.EventRecord, stamp time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create calendar file: %w", err)
	}
	defer f.Close()

	if err := Export(f, events, stamp); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	appLog.Info("calendar exported", "path", path, "event_count", len(events))
	return nil
}

// Import reads VEVENTs back into event records, in document order.
// Events without a parseable all-day start are skipped and logged.
// VEVENTs whose UID was not written by Build get ids above the largest
// recovered one, so ids stay unique.
func Import(r io.Reader) ([]domain.EventRecord, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar: %w", err)
	}

	var (
		events  []domain.EventRecord
		foreign []int // positions in events still needing an id
		maxID   int
	)
	for _, ve := range cal.Events() {
		start, err := ve.GetAllDayStartAt()
		if err != nil {
			appLog.Error("calendar vevent skipped", err, "uid", ve.Id())
			continue
		}

		e := domain.EventRecord{
			Title:       propertyValue(ve, ical.ComponentPropertySummary),
			Date:        start.Format(domain.DateLayout),
			Category:    propertyValue(ve, ical.ComponentPropertyCategories),
			Status:      propertyValue(ve, statusProperty),
			Description: propertyValue(ve, ical.ComponentPropertyDescription),
			Icon:        propertyValue(ve, iconProperty),
			Link:        propertyValue(ve, ical.ComponentPropertyUrl),
		}
		if id, ok := idFromUID(ve.Id()); ok {
			e.ID = id
			maxID = max(maxID, id)
		} else {
			foreign = append(foreign, len(events))
		}
		events = append(events, e)
	}

	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	for _, i := range foreign {
		maxID++
		events[i].ID = maxID
	}
	return events, nil
}

// ImportFile reads the calendar at path
func ImportFile(path string) ([]domain.EventRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open calendar: %w", err)
	}
	defer f.Close()
	return Import(f)
}

func propertyValue(ve *ical.VEvent, p ical.ComponentProperty) string {
	prop := ve.GetProperty(p)
	if prop == nil {
		return ""
	}
	return prop.Value
}

// idFromUID recovers the numeric id from UIDs written by Build
func idFromUID(uid string) (int, bool) {
	s, ok := strings.CutSuffix(uid, uidSuffix)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(s, "event-"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
