// Package domain defines the core value objects shared by the analytics modules:
// single-product sales histories and the multi-product dataset they pivot into.
// Everything here is immutable once constructed; the analytics modules take
// read-only views and never mutate a history in place.
package domain

import (
	"errors"
	"sort"
	"time"
)

// ErrInsufficientData is returned when an operation requires at least one
// historical observation and none are available. All other degenerate inputs
// (zero means, short windows) degrade to zero values instead of failing.
var ErrInsufficientData = errors.New("insufficient history data")

// TimeSeriesPoint is a single daily observation for one product.
type TimeSeriesPoint struct {
	Date            time.Time `json:"date"`
	ProductID       string    `json:"product_id"`
	UnitsSold       float64   `json:"units_sold"`
	InventoryOnHand float64   `json:"inventory_on_hand"`
	UnitPrice       float64   `json:"unit_price"`
	WeatherIndex    float64   `json:"weather_index"`
	EventFlag       bool      `json:"event_flag"`
}

// ProductHistory is an ordered sequence of observations for a single product,
// strictly ascending by date. The caller owns the slice; consumers treat it as
// a read-only view.
type ProductHistory []TimeSeriesPoint

// Tail returns the trailing n points, or the whole history when fewer are
// available. The returned slice shares backing storage with the receiver.
func (h ProductHistory) Tail(n int) ProductHistory {
	if n >= len(h) {
		return h
	}
	return h[len(h)-n:]
}

// Sales extracts the units-sold column.
func (h ProductHistory) Sales() []float64 {
	out := make([]float64, len(h))
	for i, p := range h {
		out[i] = p.UnitsSold
	}
	return out
}

// Inventories extracts the inventory-on-hand column.
func (h ProductHistory) Inventories() []float64 {
	out := make([]float64, len(h))
	for i, p := range h {
		out[i] = p.InventoryOnHand
	}
	return out
}

// Prices extracts the unit-price column.
func (h ProductHistory) Prices() []float64 {
	out := make([]float64, len(h))
	for i, p := range h {
		out[i] = p.UnitPrice
	}
	return out
}

// LastDate returns the date of the most recent observation. The zero time is
// returned for an empty history.
func (h ProductHistory) LastDate() time.Time {
	if len(h) == 0 {
		return time.Time{}
	}
	return h[len(h)-1].Date
}

// Dataset is a multi-product sales frame pivoted on a shared date axis.
// Each product column has exactly len(Dates) entries; days on which a product
// recorded no sales hold 0.
type Dataset struct {
	Dates []time.Time
	Sales map[string][]float64
}

// Products returns the product identifiers in deterministic (sorted) order.
func (d Dataset) Products() []string {
	out := make([]string, 0, len(d.Sales))
	for id := range d.Sales {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// BuildDataset pivots per-product histories onto a common date axis, aligning
// by calendar day and filling missing observations with 0.
func BuildDataset(histories map[string]ProductHistory) Dataset {
	dateSet := make(map[time.Time]bool)
	for _, h := range histories {
		for _, p := range h {
			dateSet[day(p.Date)] = true
		}
	}

	dates := make([]time.Time, 0, len(dateSet))
	for dt := range dateSet {
		dates = append(dates, dt)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	index := make(map[time.Time]int, len(dates))
	for i, dt := range dates {
		index[dt] = i
	}

	sales := make(map[string][]float64, len(histories))
	for id, h := range histories {
		col := make([]float64, len(dates))
		for _, p := range h {
			if i, ok := index[day(p.Date)]; ok {
				col[i] += p.UnitsSold
			}
		}
		sales[id] = col
	}

	return Dataset{Dates: dates, Sales: sales}
}

// day truncates a timestamp to its calendar day in UTC so that histories
// recorded with differing clock components still align.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
