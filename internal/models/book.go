package models

import "time"

// BookStatus is the reading status of a book.
type BookStatus string

const (
	StatusToRead     BookStatus = "to_read"
	StatusInProgress BookStatus = "in_progress"
	StatusRead       BookStatus = "read"
)

// Valid reports whether s is one of the known reading statuses.
func (s BookStatus) Valid() bool {
	switch s {
	case StatusToRead, StatusInProgress, StatusRead:
		return true
	}
	return false
}

// Book represents a tracked book. GenreID must reference an existing genre;
// the foreign key at the storage layer is the authoritative guard.
type Book struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title      string     `json:"title" gorm:"type:varchar(255);not null"`
	Author     string     `json:"author" gorm:"type:varchar(255);not null"`
	GenreID    string     `json:"genreId" gorm:"type:varchar(36);index;not null"`
	Genre      *Genre     `json:"-" gorm:"foreignKey:GenreID;constraint:OnDelete:RESTRICT"`
	Status     BookStatus `json:"status" gorm:"type:varchar(20);default:to_read"`
	CoverImage *string    `json:"coverImage"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// GenreRef is the genre shape embedded in book responses.
type GenreRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BookWithGenre is the read projection for book responses: the book row with
// its genre embedded as {id, name}, or null if the reference is unresolved.
type BookWithGenre struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	Status     BookStatus `json:"status"`
	CoverImage *string    `json:"coverImage"`
	CreatedAt  time.Time  `json:"createdAt"`
	Genre      *GenreRef  `json:"genre"`
}

// WithGenre shapes a book (and its preloaded genre association, if any) into
// the response projection.
func (b *Book) WithGenre() BookWithGenre {
	out := BookWithGenre{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		Status:     b.Status,
		CoverImage: b.CoverImage,
		CreatedAt:  b.CreatedAt,
	}
	if b.Genre != nil {
		out.Genre = &GenreRef{ID: b.Genre.ID, Name: b.Genre.Name}
	}
	return out
}
