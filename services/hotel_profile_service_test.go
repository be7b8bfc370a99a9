package services

import (
	"testing"

	"hotel-pos-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelProfileUpsert(t *testing.T) {
	db, summaries, _, _, _ := newServices(t)
	profiles := NewHotelProfileService(db, summaries)
	const partnerID = uint(8)

	_, err := profiles.Get(partnerID)
	require.ErrorIs(t, err, ErrNotFound)

	created, wasCreated, err := profiles.CreateOrUpdate(partnerID, models.HotelProfile{
		Name:                 "Riverside",
		ServiceChargePercent: 10,
	})
	require.NoError(t, err)
	assert.True(t, wasCreated)

	updated, wasCreated, err := profiles.CreateOrUpdate(partnerID, models.HotelProfile{
		Name:       "Riverside Grand",
		VatPercent: 7,
	})
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Riverside Grand", updated.Name)

	fetched, err := profiles.Get(partnerID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, float64(7), fetched.VatPercent)
}

func TestHotelProfilePatchIgnoresProtectedKeys(t *testing.T) {
	db, summaries, _, _, _ := newServices(t)
	profiles := NewHotelProfileService(db, summaries)
	const partnerID = uint(8)

	created, _, err := profiles.CreateOrUpdate(partnerID, models.HotelProfile{Name: "Riverside"})
	require.NoError(t, err)

	patched, err := profiles.UpdateByID(partnerID, created.ID, map[string]interface{}{
		"phone":         "02-000-0000",
		"serviceCharge": 12.5,
		"partnerId":     99,
		"id":            12345,
	})
	require.NoError(t, err)
	assert.Equal(t, "02-000-0000", patched.Phone)
	assert.Equal(t, 12.5, patched.ServiceChargePercent)
	assert.Equal(t, partnerID, patched.PartnerID)
	assert.Equal(t, created.ID, patched.ID)

	_, err = profiles.UpdateByID(partnerID+1, created.ID, map[string]interface{}{"phone": "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHotelProfileDelete(t *testing.T) {
	db, summaries, _, _, _ := newServices(t)
	profiles := NewHotelProfileService(db, summaries)

	created, _, err := profiles.CreateOrUpdate(1, models.HotelProfile{Name: "Riverside"})
	require.NoError(t, err)

	_, err = profiles.Delete(2, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = profiles.Delete(1, created.ID)
	require.NoError(t, err)
	_, err = profiles.Get(1)
	require.ErrorIs(t, err, ErrNotFound)
}
