package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/M-N-Hossain/bookverse-backend/internal/models"
)

func TestBookStatusValid(t *testing.T) {
	assert.True(t, models.StatusToRead.Valid())
	assert.True(t, models.StatusInProgress.Valid())
	assert.True(t, models.StatusRead.Valid())

	assert.False(t, models.BookStatus("archived").Valid())
	assert.False(t, models.BookStatus("").Valid())
}

func TestBookWithGenreShaping(t *testing.T) {
	book := models.Book{
		ID:      "b1",
		Title:   "The Hobbit",
		Author:  "J.R.R. Tolkien",
		GenreID: "g1",
		Genre:   &models.Genre{ID: "g1", Name: "Fantasy"},
		Status:  models.StatusRead,
	}

	shaped := book.WithGenre()
	assert.Equal(t, "b1", shaped.ID)
	assert.NotNil(t, shaped.Genre)
	assert.Equal(t, "Fantasy", shaped.Genre.Name)

	// An unresolved genre reference serializes as null, not a zero struct
	book.Genre = nil
	raw, err := json.Marshal(book.WithGenre())
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"genre":null`)
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	user := models.User{ID: "u1", Username: "alice", Email: "alice@example.com", Password: "$2a$10$hash"}

	raw, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.NotContains(t, string(raw), "password")
}
