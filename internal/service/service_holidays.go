package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/MKhiriev/holiday-planner/internal/keys"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/models"
)

// Bundled default dataset: the 2026 Myanmar public holidays in a
// Calendarific-style envelope. Used when no remote source is configured and
// as the fallback when a configured source fails.
//
//go:embed holidays.json
var embeddedHolidays []byte

// recurringHorizonYears is how many extra years fixed-date holidays are
// projected forward past their dataset year.
const recurringHorizonYears = 1

type holidayService struct {
	source HolidaySource
	loc    *time.Location

	mu     sync.Mutex
	cached []models.Holiday

	logger *logger.Logger
}

// NewHolidayService builds the dataset service. source may be nil, in which
// case only the embedded dataset is served.
func NewHolidayService(source HolidaySource, logger *logger.Logger) HolidayService {
	return &holidayService{
		source: source,
		loc:    time.Local,
		logger: logger,
	}
}

func (s *holidayService) List(ctx context.Context) ([]models.Holiday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	holidays, err := decodeHolidayDataset(embeddedHolidays)
	if err != nil {
		return nil, fmt.Errorf("embedded holiday dataset: %w", err)
	}

	if s.source != nil {
		fetched, fetchErr := s.source.Fetch(ctx)
		if fetchErr != nil {
			s.logger.Warn().Err(fetchErr).Msg("holiday source fetch failed, serving embedded dataset")
		} else if len(fetched) > 0 {
			holidays = mergeHolidays(holidays, fetched)
		}
	}

	holidays = expandRecurring(holidays, recurringHorizonYears, s.loc)
	sort.SliceStable(holidays, func(i, j int) bool { return holidays[i].Date < holidays[j].Date })

	s.cached = holidays
	return s.cached, nil
}

func (s *holidayService) Upcoming(ctx context.Context, now time.Time) ([]models.Holiday, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	upcoming := make([]models.Holiday, 0, len(all))
	for _, h := range all {
		starts := h.StartsAt(s.loc)
		if starts.IsZero() || starts.Before(today) {
			continue
		}
		upcoming = append(upcoming, h)
	}

	return upcoming, nil
}

func (s *holidayService) Get(ctx context.Context, holidayID string) (models.Holiday, error) {
	all, err := s.List(ctx)
	if err != nil {
		return models.Holiday{}, err
	}

	holidayID = keys.NormalizeID(holidayID)
	for _, h := range all {
		if h.ID == holidayID {
			return h, nil
		}
	}

	// допускаем поиск по голой дате
	for _, h := range all {
		if h.Date == keys.DatePart(holidayID) {
			return h, nil
		}
	}

	return models.Holiday{}, ErrHolidayNotFound
}

// calendarificEnvelope mirrors the provider's response shape; days and
// recurring are dataset extensions the provider does not carry.
type calendarificEnvelope struct {
	Response struct {
		Holidays []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Date        struct {
				ISO string `json:"iso"`
			} `json:"date"`
			Days      int  `json:"days"`
			Recurring bool `json:"recurring"`
		} `json:"holidays"`
	} `json:"response"`
}

func decodeHolidayDataset(raw []byte) ([]models.Holiday, error) {
	var envelope calendarificEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}

	holidays := make([]models.Holiday, 0, len(envelope.Response.Holidays))
	for _, h := range envelope.Response.Holidays {
		days := h.Days
		if days < 1 {
			days = 1
		}
		holidays = append(holidays, models.Holiday{
			ID:          holidayID(h.Date.ISO, h.Name),
			Name:        h.Name,
			Description: h.Description,
			Date:        h.Date.ISO,
			Days:        days,
			Recurring:   h.Recurring,
		})
	}

	return holidays, nil
}

// holidayID builds the composite "<iso-date>|<slug>" identifier.
func holidayID(isoDate, name string) string {
	return isoDate + "|" + slugify(name)
}

func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// mergeHolidays overlays fetched entries onto the base dataset; a fetched
// holiday wins over an embedded one with the same id.
func mergeHolidays(base, fetched []models.Holiday) []models.Holiday {
	seen := make(map[string]int, len(base))
	merged := append([]models.Holiday(nil), base...)
	for i, h := range merged {
		seen[h.ID] = i
	}
	for _, h := range fetched {
		if h.ID == "" {
			h.ID = holidayID(h.Date, h.Name)
		}
		if i, ok := seen[h.ID]; ok {
			merged[i] = h
			continue
		}
		seen[h.ID] = len(merged)
		merged = append(merged, h)
	}
	return merged
}

// expandRecurring projects fixed-date holidays into subsequent years with a
// yearly recurrence rule, so next year's civil holidays are plannable before
// the dataset's own year ends.
func expandRecurring(holidays []models.Holiday, horizonYears int, loc *time.Location) []models.Holiday {
	expanded := append([]models.Holiday(nil), holidays...)
	for _, h := range holidays {
		if !h.Recurring {
			continue
		}
		start := h.StartsAt(loc)
		if start.IsZero() {
			continue
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:    rrule.YEARLY,
			Dtstart: start,
			Count:   horizonYears + 1,
		})
		if err != nil {
			continue
		}

		for _, occurrence := range rule.All()[1:] {
			projected := h
			projected.Date = occurrence.Format(holidayDateLayout)
			projected.ID = holidayID(projected.Date, projected.Name)
			expanded = append(expanded, projected)
		}
	}
	return expanded
}
