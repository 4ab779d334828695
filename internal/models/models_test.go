package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validZone() *DisasterZone {
	return &DisasterZone{
		Name:            "Mumbai Flood Zone",
		DisasterType:    DisasterTypeFlood,
		CenterLatitude:  decimal.RequireFromString("19.076000"),
		CenterLongitude: decimal.RequireFromString("72.877700"),
		Radius:          20,
		DangerLevel:     DangerLevelHigh,
	}
}

func TestDisasterZoneValidate(t *testing.T) {
	require.NoError(t, validZone().Validate())

	t.Run("zero radius is accepted", func(t *testing.T) {
		z := validZone()
		z.Radius = 0
		assert.NoError(t, z.Validate())
	})

	cases := map[string]func(z *DisasterZone){
		"negative radius":   func(z *DisasterZone) { z.Radius = -0.5 },
		"empty name":        func(z *DisasterZone) { z.Name = "" },
		"unknown type":      func(z *DisasterZone) { z.DisasterType = "METEOR" },
		"unknown level":     func(z *DisasterZone) { z.DangerLevel = "EXTREME" },
		"latitude too big":  func(z *DisasterZone) { z.CenterLatitude = decimal.NewFromFloat(90.000001) },
		"longitude too low": func(z *DisasterZone) { z.CenterLongitude = decimal.NewFromInt(-181) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			z := validZone()
			mutate(z)
			err := z.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidZone)
		})
	}
}

func TestSosStatusTransitions(t *testing.T) {
	assert.True(t, SosStatusPending.CanTransitionTo(SosStatusInProgress))
	assert.True(t, SosStatusPending.CanTransitionTo(SosStatusResolved))
	assert.True(t, SosStatusInProgress.CanTransitionTo(SosStatusResolved))

	assert.False(t, SosStatusPending.CanTransitionTo(SosStatusPending))
	assert.False(t, SosStatusInProgress.CanTransitionTo(SosStatusPending))
	assert.False(t, SosStatusResolved.CanTransitionTo(SosStatusInProgress))
	assert.False(t, SosStatusResolved.CanTransitionTo(SosStatusResolved))
}

func TestEnumValid(t *testing.T) {
	for _, dt := range DisasterTypes {
		assert.True(t, dt.Valid(), dt)
	}
	assert.False(t, DisasterType("flood").Valid())
	assert.True(t, DangerLevelMedium.Valid())
	assert.False(t, DangerLevel("").Valid())
	assert.True(t, SosStatusResolved.Valid())
	assert.False(t, SosStatus("DONE").Valid())
}

func TestUserIsAdmin(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}
