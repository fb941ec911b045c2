// Package api defines the wire representation of sales histories shared by
// the HTTP handlers.
package api

import (
	"fmt"
	"sort"
	"time"

	"github.com/aristath/retailmind/internal/domain"
)

// HistoryPoint is one daily observation as uploaded by clients. Dates are
// calendar days ("2006-01-02"); full RFC 3339 timestamps are also accepted.
type HistoryPoint struct {
	Date            string  `json:"date"`
	UnitsSold       float64 `json:"units_sold"`
	InventoryOnHand float64 `json:"inventory_on_hand"`
	UnitPrice       float64 `json:"unit_price"`
	WeatherIndex    float64 `json:"weather_index"`
	EventFlag       bool    `json:"event_flag"`
}

// ParseHistory converts wire points into a date-sorted product history.
func ParseHistory(productID string, points []HistoryPoint) (domain.ProductHistory, error) {
	history := make(domain.ProductHistory, 0, len(points))
	for i, p := range points {
		date, err := parseDate(p.Date)
		if err != nil {
			return nil, fmt.Errorf("history point %d: %w", i, err)
		}
		history = append(history, domain.TimeSeriesPoint{
			Date:            date,
			ProductID:       productID,
			UnitsSold:       p.UnitsSold,
			InventoryOnHand: p.InventoryOnHand,
			UnitPrice:       p.UnitPrice,
			WeatherIndex:    p.WeatherIndex,
			EventFlag:       p.EventFlag,
		})
	}
	sort.SliceStable(history, func(i, j int) bool { return history[i].Date.Before(history[j].Date) })
	return history, nil
}

// ParseHistories converts a multi-product upload.
func ParseHistories(raw map[string][]HistoryPoint) (map[string]domain.ProductHistory, error) {
	histories := make(map[string]domain.ProductHistory, len(raw))
	for id, points := range raw {
		h, err := ParseHistory(id, points)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", id, err)
		}
		histories[id] = h
	}
	return histories, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
