package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDate(t *testing.T) {
	assert.True(t, validDate("2024-01-31"))
	assert.True(t, validDate("2024-02-29"), "leap day")

	assert.False(t, validDate("2023-02-29"), "not a leap year")
	assert.False(t, validDate("2024-13-01"))
	assert.False(t, validDate("01/01/2024"))
	assert.False(t, validDate("2024-1-1"))
	assert.False(t, validDate(""))
}
