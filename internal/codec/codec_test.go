package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelf-cli/bookshelf/internal/codec"
	"github.com/bookshelf-cli/bookshelf/internal/model"
)

func Test_Encode(t *testing.T) {
	tests := []struct {
		name string
		book model.Book
		want string
	}{
		{
			name: "read_book",
			book: model.Book{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Year: 1925, Genre: "Fiction", Read: true},
			want: "The Great Gatsby|F. Scott Fitzgerald|1925|Fiction|Read",
		},
		{
			name: "unread_book",
			book: model.Book{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Sci-Fi", Read: false},
			want: "Dune|Frank Herbert|1965|Sci-Fi|Unread",
		},
		{
			name: "zero_value_book",
			book: model.Book{},
			want: "||0||Unread",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, codec.Encode(tc.book))
		})
	}
}

func Test_Decode_RoundTrip(t *testing.T) {
	books := []model.Book{
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Year: 1925, Genre: "Fiction", Read: true},
		{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Sci-Fi", Read: false},
		{Title: "Метро 2033", Author: "Дмитрий Глуховский", Year: 2005, Genre: "Postapocalyptic", Read: true},
		{Title: "", Author: "", Year: 0, Genre: "", Read: false},
	}

	for _, b := range books {
		got, err := codec.Decode(codec.Encode(b))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
}

func Test_Decode_MalformedLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "empty_line", line: ""},
		{name: "free_text", line: "not a record at all"},
		{name: "four_fields", line: "a|b|1999|d"},
		{name: "six_fields", line: "a|b|1999|d|Read|extra"},
		{name: "delimiter_inside_title", line: "Harry|Potter|J. K. Rowling|1997|Fantasy|Read"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.Decode(tc.line)
			assert.ErrorIs(t, err, codec.ErrFieldCount)
		})
	}
}

func Test_Decode_YearFallback(t *testing.T) {
	got, err := codec.Decode("Beowulf|Unknown|circa 1000|Epic|Unread")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Year)
	assert.Equal(t, "Beowulf", got.Title)
	assert.Equal(t, "Epic", got.Genre)
}

func Test_Decode_ReadFlag(t *testing.T) {
	tests := []struct {
		flag string
		want bool
	}{
		{flag: "Read", want: true},
		{flag: "Unread", want: false},
		// Anything unrecognized degrades to unread.
		{flag: "yes", want: false},
		{flag: "read", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.flag, func(t *testing.T) {
			got, err := codec.Decode("t|a|2000|g|" + tc.flag)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Read)
		})
	}
}
