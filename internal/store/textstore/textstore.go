// Package textstore persists the library to a plain text file, one
// encoded book per line. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.
package textstore

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/google/renameio/v2"
	"go.uber.org/zap"

	"github.com/bookshelf-cli/bookshelf/internal/codec"
	"github.com/bookshelf-cli/bookshelf/internal/model"
)

// Library owns the in-memory sequence of books and the backing file.
// Every mutating operation saves before returning, so there is no
// modified-but-unsaved state between operations.
type Library struct {
	books []model.Book
	path  string
	log   *zap.SugaredLogger
}

// Load reads the backing file at path. A missing file is not an error;
// it yields an empty library. Blank lines are skipped; a line that
// fails to decode is logged and skipped, never fatal.
func Load(path string, log *zap.SugaredLogger) (*Library, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	lib := &Library{path: path, log: log}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debugw("no library file, starting empty", "path", path)
			return lib, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		b, err := codec.Decode(line)
		if err != nil {
			log.Warnw("skipping malformed line", "path", path, "line", i+1, "error", err)
			continue
		}
		lib.books = append(lib.books, b)
	}
	log.Debugw("library loaded", "path", path, "books", len(lib.books))
	return lib, nil
}

// Path returns the backing file path.
func (l *Library) Path() string { return l.path }

// Books returns the current sequence in insertion order. The slice is
// a copy; mutating it does not touch the library.
func (l *Library) Books() []model.Book {
	out := make([]model.Book, len(l.books))
	copy(out, l.books)
	return out
}

// Len reports the number of books.
func (l *Library) Len() int { return len(l.books) }

// Save rewrites the backing file to mirror memory exactly, one line per
// book in current order. The write goes through a temp file and rename
// so a kill mid-save cannot truncate the previous contents.
func (l *Library) Save() error {
	var sb strings.Builder
	for _, b := range l.books {
		sb.WriteString(codec.Encode(b))
		sb.WriteByte('\n')
	}
	if err := renameio.WriteFile(l.path, []byte(sb.String()), 0o644); err != nil {
		l.log.Errorw("save failed", "path", l.path, "error", err)
		return fmt.Errorf("write file: %w", err)
	}
	l.log.Debugw("library saved", "path", l.path, "books", len(l.books))
	return nil
}

// Add appends b (duplicates are legal) and saves immediately.
func (l *Library) Add(b model.Book) error {
	l.books = append(l.books, b)
	return l.Save()
}

// Remove deletes every book whose title equals title ignoring case, and
// reports how many were removed. Zero matches is a normal outcome and
// does not touch the file; a save happens only when something changed.
func (l *Library) Remove(title string) (int, error) {
	kept := make([]model.Book, 0, len(l.books))
	removed := 0
	for _, b := range l.books {
		if strings.EqualFold(b.Title, title) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	if removed == 0 {
		return 0, nil
	}
	l.books = kept
	if err := l.Save(); err != nil {
		return removed, err
	}
	return removed, nil
}

// Search returns, in original order, every book whose title or author
// contains query as a case-insensitive substring. Read-only; an empty
// result is a normal outcome.
func (l *Library) Search(query string) []model.Book {
	return l.scan(func(b model.Book) bool {
		return containsFold(b.Title, query) || containsFold(b.Author, query)
	})
}

// SearchByTitle restricts Search to the title field.
func (l *Library) SearchByTitle(query string) []model.Book {
	return l.scan(func(b model.Book) bool { return containsFold(b.Title, query) })
}

// SearchByAuthor restricts Search to the author field.
func (l *Library) SearchByAuthor(query string) []model.Book {
	return l.scan(func(b model.Book) bool { return containsFold(b.Author, query) })
}

func (l *Library) scan(match func(model.Book) bool) []model.Book {
	var out []model.Book
	for _, b := range l.books {
		if match(b) {
			out = append(out, b)
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// Statistics summarizes the library. PercentRead is 0.0 for an empty
// library and otherwise rounded to one decimal place.
func (l *Library) Statistics() model.Stats {
	s := model.Stats{Total: len(l.books)}
	for _, b := range l.books {
		if b.Read {
			s.ReadCount++
		}
	}
	if s.Total > 0 {
		pct := 100 * float64(s.ReadCount) / float64(s.Total)
		s.PercentRead = math.Round(pct*10) / 10
	}
	return s
}
