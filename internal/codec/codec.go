// Package codec maps a Book to and from its backing-file line form:
// five fields joined by "|" in the fixed order
// title|author|year|genre|read-flag, read-flag being "Read" or "Unread".
//
// Field values containing the delimiter or a newline are not escaped;
// such a line will not survive a round trip. This is a known limitation
// of the format, kept for compatibility with existing library files.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bookshelf-cli/bookshelf/internal/model"
)

// Delimiter separates fields within one line.
const Delimiter = "|"

const (
	readToken   = "Read"
	unreadToken = "Unread"
)

const numFields = 5

// ErrFieldCount marks a line that does not split into exactly five fields.
var ErrFieldCount = errors.New("wrong field count")

// Encode renders b as a single line without a trailing newline.
func Encode(b model.Book) string {
	flag := unreadToken
	if b.Read {
		flag = readToken
	}
	return strings.Join([]string{
		b.Title,
		b.Author,
		strconv.Itoa(b.Year),
		b.Genre,
		flag,
	}, Delimiter)
}

// Decode parses one line back into a Book. A line that does not have
// exactly five fields fails with ErrFieldCount; it is the caller's call
// whether to skip it. An unparsable year degrades to 0 instead of
// failing the whole record.
func Decode(line string) (model.Book, error) {
	parts := strings.Split(line, Delimiter)
	if len(parts) != numFields {
		return model.Book{}, fmt.Errorf("%w: want %d, got %d", ErrFieldCount, numFields, len(parts))
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		year = 0
	}
	return model.Book{
		Title:  parts[0],
		Author: parts[1],
		Year:   year,
		Genre:  parts[3],
		Read:   parts[4] == readToken,
	}, nil
}
