package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserPrepareDefaultsDisplayName(t *testing.T) {
	u := &User{Email: "  mason@site.com "}
	u.Prepare()

	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "mason@site.com", u.Email)
	assert.Equal(t, "mason", u.DisplayName)
}

func TestUserPrepareKeepsExplicitDisplayName(t *testing.T) {
	u := &User{Email: "mason@site.com", DisplayName: "Site Mason"}
	u.Prepare()

	assert.Equal(t, "Site Mason", u.DisplayName)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusOngoing.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, Status("paused").Valid())
	assert.False(t, Status("").Valid())
}

func TestProjectPrepareDefaultsStatus(t *testing.T) {
	p := &Project{Name: "Lakeview Villa", StartDate: "2024-01-01"}
	p.Prepare()

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, StatusOngoing, p.Status)
}
