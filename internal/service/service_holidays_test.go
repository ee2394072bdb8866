package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/models"
)

type stubHolidaySource struct {
	holidays []models.Holiday
	err      error
}

func (s *stubHolidaySource) Fetch(_ context.Context) ([]models.Holiday, error) {
	return s.holidays, s.err
}

func TestHolidayService_List_EmbeddedDataset(t *testing.T) {
	svc := NewHolidayService(nil, logger.Nop())

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, all)

	// отсортировано по дате
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Date, all[i].Date)
	}

	byID := make(map[string]models.Holiday, len(all))
	for _, h := range all {
		byID[h.ID] = h
	}

	thingyan, ok := byID["2026-04-13|thingyan-water-festival"]
	require.True(t, ok)
	assert.Equal(t, "Thingyan Water Festival", thingyan.Name)
	assert.Equal(t, 4, thingyan.Days)
	assert.False(t, thingyan.Recurring)
}

func TestHolidayService_List_ExpandsRecurringIntoNextYear(t *testing.T) {
	svc := NewHolidayService(nil, logger.Nop())

	all, err := svc.List(context.Background())
	require.NoError(t, err)

	ids := make(map[string]bool, len(all))
	for _, h := range all {
		ids[h.ID] = true
	}

	assert.True(t, ids["2026-01-04|independence-day"])
	assert.True(t, ids["2027-01-04|independence-day"], "fixed-date holiday must be projected into 2027")
	assert.False(t, ids["2027-04-13|thingyan-water-festival"], "movable holiday must not be projected")
}

func TestHolidayService_List_MergesFetchedDataset(t *testing.T) {
	source := &stubHolidaySource{holidays: []models.Holiday{
		{Name: "Kayin New Year", Description: "Karen new year festival", Date: "2026-12-09", Days: 1},
	}}
	svc := NewHolidayService(source, logger.Nop())

	all, err := svc.List(context.Background())
	require.NoError(t, err)

	var found bool
	for _, h := range all {
		if h.ID == "2026-12-09|kayin-new-year" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestHolidayService_List_SourceFailureFallsBackToEmbedded(t *testing.T) {
	source := &stubHolidaySource{err: errors.New("api quota exceeded")}
	svc := NewHolidayService(source, logger.Nop())

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, all)
}

func TestHolidayService_Upcoming(t *testing.T) {
	svc := NewHolidayService(nil, logger.Nop())
	now := time.Date(2026, 7, 1, 15, 0, 0, 0, time.UTC)

	upcoming, err := svc.Upcoming(context.Background(), now)
	require.NoError(t, err)
	require.NotEmpty(t, upcoming)

	for _, h := range upcoming {
		assert.GreaterOrEqual(t, h.Date, "2026-07-01", "holiday %s is in the past", h.ID)
	}
}

func TestHolidayService_Upcoming_IncludesToday(t *testing.T) {
	svc := NewHolidayService(nil, logger.Nop())
	// полдень самого дня праздника — праздник ещё в списке
	now := time.Date(2026, 12, 25, 12, 0, 0, 0, time.Local)

	upcoming, err := svc.Upcoming(context.Background(), now)
	require.NoError(t, err)

	var found bool
	for _, h := range upcoming {
		if h.ID == "2026-12-25|christmas-day" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestHolidayService_Get(t *testing.T) {
	svc := NewHolidayService(nil, logger.Nop())
	ctx := context.Background()

	h, err := svc.Get(ctx, "2026-04-13|thingyan-water-festival")
	require.NoError(t, err)
	assert.Equal(t, "Thingyan Water Festival", h.Name)

	// поиск по голой дате
	h, err = svc.Get(ctx, "2026-07-19")
	require.NoError(t, err)
	assert.Equal(t, "Martyrs' Day", h.Name)

	_, err = svc.Get(ctx, "2026-06-01|no-such-holiday")
	assert.ErrorIs(t, err, ErrHolidayNotFound)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Thingyan Water Festival", want: "thingyan-water-festival"},
		{name: "Martyrs' Day", want: "martyrs-day"},
		{name: "Full Moon Day of Waso", want: "full-moon-day-of-waso"},
		{name: "  New Year  ", want: "new-year"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.name))
	}
}
