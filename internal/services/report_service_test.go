package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructax/internal/models"
)

func TestBuildEstimationReport(t *testing.T) {
	svc := NewReportService()

	logs := []models.MaterialLog{
		entry(models.MaterialSand, 100, "2024-01-01"),
		entry(models.MaterialCement, 50, "2024-01-01"),
		entry(models.MaterialSand, 30, "2024-01-02"),
	}

	report, err := svc.BuildEstimationReport("Lakeview Villa", logs)
	require.NoError(t, err)
	require.NotEmpty(t, report)
	assert.Equal(t, "%PDF", string(report[:4]))
}

func TestBuildEstimationReportNoEntries(t *testing.T) {
	svc := NewReportService()

	report, err := svc.BuildEstimationReport("", nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(report[:4]))
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{99999, "99,999"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{12345678, "1,23,45,678"},
		{-1234567, "-12,34,567"},
		{1234.6, "1,235"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, formatAmount(tc.amount), "amount %v", tc.amount)
	}
}

func TestShortDate(t *testing.T) {
	assert.Equal(t, "05/01", shortDate("2024-01-05"))
	assert.Equal(t, "31/12", shortDate("2023-12-31"))
	// Unparseable input passes through untouched.
	assert.Equal(t, "not-a-date", shortDate("not-a-date"))
}
