package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_FillsOnlyEmptyFields(t *testing.T) {
	form := FormFields{
		Title:    "Il nome della rosa",
		Language: "italiano",
	}
	rec := Record{
		Title:           "The Name of the Rose",
		PublicationYear: "1980",
		Publisher:       "Bompiani",
		AuthorName:      "Umberto Eco",
		Language:        "inglese",
	}

	form.Merge(rec)

	assert.Equal(t, "Il nome della rosa", form.Title, "user input must not be overwritten")
	assert.Equal(t, "italiano", form.Language)
	assert.Equal(t, "1980", form.PublicationYear)
	assert.Equal(t, "Bompiani", form.Publisher)
	assert.Equal(t, "Umberto Eco", form.AuthorName)
}

func TestMerge_Idempotent(t *testing.T) {
	rec := Record{Title: "t", Publisher: "p", AuthorName: "a"}

	once := FormFields{PublicationYear: "1999"}
	once.Merge(rec)

	twice := once
	twice.Merge(rec)

	assert.Equal(t, once, twice)
}

func TestMerge_EmptyRecordIsNoOp(t *testing.T) {
	form := FormFields{Title: "t", Publisher: "p"}
	before := form

	form.Merge(Record{})

	assert.Equal(t, before, form)
	assert.True(t, Record{}.Empty())
}
