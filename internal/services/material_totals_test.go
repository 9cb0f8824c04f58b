package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructax/internal/models"
)

func entry(material models.Material, amount float64, date string) models.MaterialLog {
	return models.MaterialLog{Material: material, Amount: amount, Date: date}
}

func TestCalculateMaterialTotals(t *testing.T) {
	logs := []models.MaterialLog{
		entry(models.MaterialSand, 100, "2024-01-01"),
		entry(models.MaterialCement, 50, "2024-01-01"),
		entry(models.MaterialSand, 30, "2024-01-02"),
	}

	totals := CalculateMaterialTotals(logs)

	assert.Equal(t, MaterialTotals{
		models.MaterialSand:   130,
		models.MaterialCement: 50,
		models.MaterialLabour: 0,
		models.MaterialMetal:  0,
		models.MaterialIron:   0,
	}, totals)
	assert.InDelta(t, 180, GrandTotal(totals), 1e-9)
}

func TestCalculateMaterialTotalsEmpty(t *testing.T) {
	totals := CalculateMaterialTotals(nil)

	require.Len(t, totals, len(models.Materials))
	for _, m := range models.Materials {
		assert.Zero(t, totals[m], "expected zero total for %s", m)
	}
	assert.Zero(t, GrandTotal(totals))
}

func TestCalculateMaterialTotalsIgnoresUnknownMaterial(t *testing.T) {
	logs := []models.MaterialLog{
		entry(models.MaterialIron, 75, "2024-01-01"),
		entry(models.Material("Granite"), 999, "2024-01-01"),
	}

	totals := CalculateMaterialTotals(logs)

	assert.InDelta(t, 75, totals[models.MaterialIron], 1e-9)
	assert.InDelta(t, 75, GrandTotal(totals), 1e-9)
	assert.NotContains(t, totals, models.Material("Granite"))
}

func TestGroupLogsByDate(t *testing.T) {
	logs := []models.MaterialLog{
		entry(models.MaterialSand, 100, "2024-01-02"),
		entry(models.MaterialCement, 50, "2024-01-01"),
		entry(models.MaterialSand, 30, "2024-01-02"),
	}

	breakdown := GroupLogsByDate(logs)

	// Dates come back ascending with no duplicates.
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, breakdown.Dates)

	jan2 := breakdown.LogsByDate["2024-01-02"]
	assert.InDelta(t, 130, jan2[models.MaterialSand], 1e-9)
	assert.InDelta(t, 130, DateTotal(jan2), 1e-9)

	jan1 := breakdown.LogsByDate["2024-01-01"]
	assert.InDelta(t, 50, jan1[models.MaterialCement], 1e-9)
	assert.Zero(t, jan1[models.MaterialSand])
}

func TestGroupLogsByDateAllMaterialsPresentPerDate(t *testing.T) {
	breakdown := GroupLogsByDate([]models.MaterialLog{
		entry(models.MaterialLabour, 10, "2024-03-15"),
	})

	require.Contains(t, breakdown.LogsByDate, "2024-03-15")
	day := breakdown.LogsByDate["2024-03-15"]
	require.Len(t, day, len(models.Materials))
	for _, m := range models.Materials {
		_, ok := day[m]
		assert.True(t, ok, "material %s missing from date bucket", m)
	}
}

func TestDateTotalsSumToGrandTotal(t *testing.T) {
	logs := []models.MaterialLog{
		entry(models.MaterialSand, 12.5, "2024-05-01"),
		entry(models.MaterialMetal, 7.5, "2024-05-01"),
		entry(models.MaterialIron, 40, "2024-05-03"),
		entry(models.MaterialLabour, 20, "2024-05-02"),
	}

	breakdown := GroupLogsByDate(logs)
	var sum float64
	for _, date := range breakdown.Dates {
		sum += DateTotal(breakdown.LogsByDate[date])
	}

	assert.InDelta(t, GrandTotal(CalculateMaterialTotals(logs)), sum, 1e-9)
}
