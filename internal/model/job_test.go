package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClone_DoesNotAliasTags(t *testing.T) {
	original := JobPosting{ID: "j1", Tags: []string{"Payments"}}
	copied := original.Clone()
	copied.Tags[0] = "changed"

	assert.Equal(t, "Payments", original.Tags[0])
}

func TestPublicView_StripsSubmitterContact(t *testing.T) {
	job := JobPosting{
		ID:             "j1",
		SubmitterName:  "Sam",
		SubmitterEmail: "sam@example.com",
	}

	public := job.PublicView()
	assert.Empty(t, public.SubmitterName)
	assert.Empty(t, public.SubmitterEmail)
	// The original is untouched.
	assert.Equal(t, "Sam", job.SubmitterName)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusArchived))
	assert.False(t, ValidStatus("published"))
	assert.False(t, ValidStatus(""))
}

func TestValidSourceType(t *testing.T) {
	assert.True(t, ValidSourceType(SourceDirect))
	assert.True(t, ValidSourceType(SourceAggregated))
	assert.False(t, ValidSourceType("Scraped"))
}
