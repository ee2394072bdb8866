package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/holiday-planner/internal/config"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/utils"
	"github.com/MKhiriev/holiday-planner/models"
)

type httpHolidayAPI struct {
	client  *utils.HTTPClient
	apiKey  string
	country string
	year    int

	logger *logger.Logger
}

// NewHTTPHolidayAPI constructs a [HolidayAPI] client for a
// Calendarific-compatible provider. The provider is queried with the API key,
// country code and year from holidaysCfg; a zero year means the current one.
//
// Returns an error if holidaysCfg.APIURL is empty or not a valid URL.
func NewHTTPHolidayAPI(holidaysCfg config.Holidays, logger *logger.Logger) (HolidayAPI, error) {
	baseURL, err := normalizeBaseURL(holidaysCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid holidays api url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)

	return &httpHolidayAPI{
		client:  client,
		apiKey:  holidaysCfg.APIKey,
		country: holidaysCfg.Country,
		year:    holidaysCfg.Year,
		logger:  logger,
	}, nil
}

// calendarificResponse mirrors the provider's envelope. The days and
// recurring fields are extensions some providers carry; absent fields decode
// to their zero values.
type calendarificResponse struct {
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

// Fetch implements [HolidayAPI]. It GETs /holidays with the configured query
// parameters and maps the envelope into the planner's holiday model. The
// returned entries carry empty IDs; the dataset merge assigns them.
func (h *httpHolidayAPI) Fetch(ctx context.Context) ([]models.Holiday, error) {
	year := h.year
	if year == 0 {
		year = time.Now().Year()
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key": h.apiKey,
			"country": h.country,
			"year":    strconv.Itoa(year),
		}).
		Get("/holidays")
	if err != nil {
		return nil, fmt.Errorf("fetch holidays request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope calendarificResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode holidays response: %w", err)
	}

	holidays := make([]models.Holiday, 0, len(envelope.Response.Holidays))
	for _, entry := range envelope.Response.Holidays {
		days := entry.Days
		if days < 1 {
			days = 1
		}
		holidays = append(holidays, models.Holiday{
			Name:        entry.Name,
			Description: entry.Description,
			Date:        entry.Date.ISO,
			Days:        days,
			Recurring:   entry.Recurring,
		})
	}

	h.logger.Debug().Int("count", len(holidays)).Int("year", year).Msg("fetched holiday dataset")

	return holidays, nil
}
