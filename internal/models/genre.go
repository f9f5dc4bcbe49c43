package models

// Genre represents a book genre. Names are globally unique.
type Genre struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
}

// GenreWithCount is the read projection for genre listings: the genre row
// joined with the number of books currently referencing it. Genres with no
// books appear with BookCount 0.
type GenreWithCount struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BookCount int64  `json:"bookCount"`
}
