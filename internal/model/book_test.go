package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookshelf-cli/bookshelf/internal/model"
)

func Test_Book_Render(t *testing.T) {
	read := model.Book{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Year: 1925, Genre: "Fiction", Read: true}
	assert.Equal(t,
		"1. The Great Gatsby by F. Scott Fitzgerald (1925) - Fiction - Read",
		read.Render(1))

	unread := model.Book{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Sci-Fi"}
	assert.Equal(t,
		"7. Dune by Frank Herbert (1965) - Sci-Fi - Unread",
		unread.Render(7))
}

func Test_Book_ReadLabel(t *testing.T) {
	assert.Equal(t, "Read", model.Book{Read: true}.ReadLabel())
	assert.Equal(t, "Unread", model.Book{}.ReadLabel())
}
