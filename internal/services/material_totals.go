package services

import (
	"sort"

	"constructax/internal/models"
)

// MaterialTotals maps each recognized material to a summed amount. Every
// material is always present, zero when it has no entries.
type MaterialTotals map[models.Material]float64

// DateBreakdown holds per-date per-material sums plus the sorted distinct
// list of dates, ascending.
type DateBreakdown struct {
	Dates      []string                  `json:"dates"`
	LogsByDate map[string]MaterialTotals `json:"logsByDate"`
}

func newMaterialTotals() MaterialTotals {
	totals := make(MaterialTotals, len(models.Materials))
	for _, m := range models.Materials {
		totals[m] = 0
	}
	return totals
}

// CalculateMaterialTotals sums amounts per material across all dates.
// Entries with an unrecognized material are ignored.
func CalculateMaterialTotals(logs []models.MaterialLog) MaterialTotals {
	totals := newMaterialTotals()
	for _, log := range logs {
		if _, ok := totals[log.Material]; ok {
			totals[log.Material] += log.Amount
		}
	}
	return totals
}

// GroupLogsByDate buckets entries by calendar date. Entries on the same
// date merge into one bucket regardless of when they were recorded.
func GroupLogsByDate(logs []models.MaterialLog) DateBreakdown {
	byDate := make(map[string]MaterialTotals)
	for _, log := range logs {
		day, ok := byDate[log.Date]
		if !ok {
			day = newMaterialTotals()
			byDate[log.Date] = day
		}
		if _, ok := day[log.Material]; ok {
			day[log.Material] += log.Amount
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	// ISO dates sort chronologically as strings.
	sort.Strings(dates)

	return DateBreakdown{Dates: dates, LogsByDate: byDate}
}

// GrandTotal sums all per-material totals.
func GrandTotal(totals MaterialTotals) float64 {
	var sum float64
	for _, m := range models.Materials {
		sum += totals[m]
	}
	return sum
}

// DateTotal sums one date bucket across all materials.
func DateTotal(day MaterialTotals) float64 {
	var sum float64
	for _, m := range models.Materials {
		sum += day[m]
	}
	return sum
}
