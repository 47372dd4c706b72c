package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/bookshelf-cli/bookshelf/internal/config"
	"github.com/bookshelf-cli/bookshelf/internal/model"
	"github.com/bookshelf-cli/bookshelf/internal/store/textstore"
	"github.com/bookshelf-cli/bookshelf/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by read/unread
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options, cfg config.Config, log *zap.SugaredLogger) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(opt, cfg, log)

	case "add":
		if len(a) != 5 {
			ui.Fail(`usage: bookshelf add <title> <author> <year> <genre> <read|unread>`)
			return 2
		}
		year, err := strconv.Atoi(a[2])
		if err != nil {
			ui.Fail("add: not a year: " + a[2])
			return 2
		}
		read, err := parseReadFlag(a[4])
		if err != nil {
			ui.Fail("add: " + err.Error())
			return 2
		}
		return doAdd(model.Book{
			Title:  a[0],
			Author: a[1],
			Year:   year,
			Genre:  a[3],
			Read:   read,
		}, cfg, log)

	case "rm":
		if len(a) == 0 {
			ui.Fail("usage: bookshelf rm <title...>")
			return 2
		}
		return doRemove(strings.Join(a, " "), cfg, log)

	case "search":
		scope := ""
		if len(a) > 1 && (a[0] == "title" || a[0] == "author") {
			scope, a = a[0], a[1:]
		}
		if len(a) == 0 {
			ui.Fail("usage: bookshelf search [title|author] <query...>")
			return 2
		}
		return doSearch(scope, strings.Join(a, " "), cfg, log)

	case "stats":
		return doStats(cfg, log)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`bookshelf - a tiny personal library CLI

Usage:
  bookshelf                          Interactive menu
  bookshelf <subcommand> [args]

Subcommands:
  add <title> <author> <year> <genre> <read|unread>
                     Add a book to the library
  rm <title...>      Remove every book with that title (ignoring case)
  search [title|author] <query...>
                     Find books whose title or author contains the query
  ls                 List all books
  stats              Show library statistics

Examples:
  bookshelf add "The Great Gatsby" "F. Scott Fitzgerald" 1925 Fiction read
  bookshelf search gatsby
  bookshelf rm "The Great Gatsby"
`)
}

func parseReadFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "read", "yes", "y", "true":
		return true, nil
	case "unread", "no", "n", "false":
		return false, nil
	}
	return false, fmt.Errorf("want read or unread, got %q", s)
}

// -------------- subcommand impls ----------------

func doList(opt Options, cfg config.Config, log *zap.SugaredLogger) int {
	lib, err := textstore.Load(cfg.File, log)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	books := lib.Books()

	// Header + progress
	st := lib.Statistics()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(ui.Current().Title, "Library"),
		ui.C(ui.Current().Success, ui.Current().SymRead), st.ReadCount,
		ui.C(ui.Current().Pending, ui.Current().SymUnread), st.Total-st.ReadCount,
		ui.C(ui.Current().Accent, "Total"), st.Total,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(ui.Current().Muted, ui.ProgressBar(st.ReadCount, st.Total, 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(books)...)
	} else {
		lines = append(lines, flatLines(books)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: add with `bookshelf add \"Title\" \"Author\" 1999 Genre unread`"))
	ui.PanelWith(fmt.Sprintf("%d/%d read", st.ReadCount, st.Total), lines)
	return 0
}

func doAdd(b model.Book, cfg config.Config, log *zap.SugaredLogger) int {
	lib, err := textstore.Load(cfg.File, log)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" {
		ui.Fail("add: empty title")
		return 2
	}
	if err := lib.Add(b); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("added")
	return 0
}

func doRemove(title string, cfg config.Config, log *zap.SugaredLogger) int {
	lib, err := textstore.Load(cfg.File, log)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	n, err := lib.Remove(title)
	if err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	if n == 0 {
		ui.Info("not found: " + title)
		return 0
	}
	ui.OK(fmt.Sprintf("removed %d", n))
	return 0
}

func doSearch(scope, query string, cfg config.Config, log *zap.SugaredLogger) int {
	lib, err := textstore.Load(cfg.File, log)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	var matches []model.Book
	switch scope {
	case "title":
		matches = lib.SearchByTitle(query)
	case "author":
		matches = lib.SearchByAuthor(query)
	default:
		matches = lib.Search(query)
	}
	if len(matches) == 0 {
		ui.Info("no matching books")
		return 0
	}
	var lines []string
	lines = append(lines, ui.C(ui.Current().Title, "Matching Books"))
	lines = append(lines, "")
	lines = append(lines, flatLines(matches)...)
	ui.PanelWith(fmt.Sprintf("%d found", len(matches)), lines)
	return 0
}

func doStats(cfg config.Config, log *zap.SugaredLogger) int {
	lib, err := textstore.Load(cfg.File, log)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	st := lib.Statistics()
	if st.Total == 0 {
		ui.Info("your library is empty")
		return 0
	}
	lines := []string{
		ui.C(ui.Current().Title, "Library Statistics"),
		"",
		fmt.Sprintf("Total books:     %d", st.Total),
		fmt.Sprintf("Books read:      %d", st.ReadCount),
		fmt.Sprintf("Percentage read: %.1f%%", st.PercentRead),
		ui.C(ui.Current().Muted, ui.ProgressBar(st.ReadCount, st.Total, 28)),
	}
	ui.Panel(lines)
	return 0
}

// -------------- rendering helpers --------------

func flatLines(books []model.Book) []string {
	if len(books) == 0 {
		return []string{ui.C(ui.Current().Muted, "no books")}
	}
	out := make([]string, 0, len(books))
	for i, b := range books {
		box := ui.Current().BookUnread
		color := ui.Current().Muted
		if b.Read {
			box, color = ui.Current().BookRead, ui.Current().Success
		}
		line := b.Render(i + 1)
		if len(line) > 100 {
			line = line[:97] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s", ui.C(color, box), line))
	}
	return out
}

func groupLines(books []model.Book) []string {
	var unread, read []model.Book
	for _, b := range books {
		if b.Read {
			read = append(read, b)
		} else {
			unread = append(unread, b)
		}
	}
	var lines []string
	lines = append(lines, ui.C(ui.Current().Accent, "Unread"))
	if len(unread) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(unread)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Accent, "Read"))
	if len(read) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(read)...)
	}
	return lines
}
