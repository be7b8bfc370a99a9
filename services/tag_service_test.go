package services

import (
	"testing"

	"hotel-pos-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCreateDefaultsAndUniqueness(t *testing.T) {
	_, summaries, _, _, tags := newServices(t)
	const partnerID = uint(5)

	tag, err := tags.Create(partnerID, TagInput{Name: " sea view "})
	require.NoError(t, err)
	assert.Equal(t, "sea view", tag.Name)
	assert.Equal(t, models.DefaultTagColor, tag.Color)

	_, err = tags.Create(partnerID, TagInput{Name: "sea view"})
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)

	// Same name under another partner is fine.
	_, err = tags.Create(partnerID+1, TagInput{Name: "sea view"})
	require.NoError(t, err)

	summary, err := summaries.GetByPartner(partnerID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TagsCount)
}

func TestTagUpdateRejectsTakenName(t *testing.T) {
	_, _, _, _, tags := newServices(t)
	const partnerID = uint(5)

	_, err := tags.Create(partnerID, TagInput{Name: "balcony"})
	require.NoError(t, err)
	tag, err := tags.Create(partnerID, TagInput{Name: "pool access", Color: "#00AAFF"})
	require.NoError(t, err)

	_, err = tags.Update(partnerID, tag.ID, TagInput{Name: "balcony"})
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)

	// Renaming to itself is not a conflict.
	updated, err := tags.Update(partnerID, tag.ID, TagInput{Name: "pool access", Description: "ground floor only"})
	require.NoError(t, err)
	assert.Equal(t, "ground floor only", updated.Description)
	assert.Equal(t, "#00AAFF", updated.Color)
}

func TestTagDeleteScopedToPartner(t *testing.T) {
	_, summaries, _, _, tags := newServices(t)

	tag, err := tags.Create(1, TagInput{Name: "quiet"})
	require.NoError(t, err)

	_, err = tags.Delete(2, tag.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = tags.Delete(1, tag.ID)
	require.NoError(t, err)

	summary, err := summaries.GetByPartner(1)
	require.NoError(t, err)
	assert.Zero(t, summary.TagsCount)
}
