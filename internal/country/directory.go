package country

import (
	"fmt"
	"slices"
	"strings"
)

// ViewMode selects which views back the directory's sections.
type ViewMode int

const (
	// Browsing shows common (section 0) and all (section 1).
	Browsing ViewMode = iota
	// Filtering shows a single section of search results.
	Filtering
)

func (m ViewMode) String() string {
	switch m {
	case Browsing:
		return "browsing"
	case Filtering:
		return "filtering"
	default:
		return fmt.Sprintf("ViewMode(%d)", int(m))
	}
}

const (
	commonSectionTitle = "Common Countries"
	allSectionTitle    = "All Countries"
)

// LoadAll builds every code and sorts the survivors by case-insensitive
// name. Ties keep their input order.
func LoadAll(codes []string, lookup Lookup) []Entry {
	out := buildEntries(codes, lookup)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return out
}

// LoadCommon builds every code and keeps the caller's order.
func LoadCommon(codes []string, lookup Lookup) []Entry {
	return buildEntries(codes, lookup)
}

func buildEntries(codes []string, lookup Lookup) []Entry {
	out := make([]Entry, 0, len(codes))
	for _, code := range codes {
		entry, ok := Build(code, lookup)
		if !ok {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// Search returns the entries of all that match query, in their original
// order. An empty query matches every entry; callers that treat an empty
// query as "not searching" must check for it before calling.
func Search(all []Entry, query string) []Entry {
	out := make([]Entry, 0, len(all))
	for _, entry := range all {
		if entry.Matches(query) {
			out = append(out, entry)
		}
	}
	return out
}

// Views holds the three sequences a directory can address.
type Views struct {
	Common   []Entry
	All      []Entry
	Filtered []Entry
}

// Sections returns how many sections mode exposes.
func (v Views) Sections(mode ViewMode) int {
	if mode == Filtering {
		return 1
	}
	return 2
}

// Rows returns the length of section under mode. Unknown sections have no rows.
func (v Views) Rows(mode ViewMode, section int) int {
	rows, ok := v.section(mode, section)
	if !ok {
		return 0
	}
	return len(rows)
}

// Resolve maps (section, row) to an entry. Addressing outside the current
// sections or rows is a programming error and panics.
func (v Views) Resolve(mode ViewMode, section, row int) Entry {
	rows, ok := v.section(mode, section)
	if !ok {
		panic(fmt.Sprintf("country: section %d out of range in %s mode", section, mode))
	}
	if row < 0 || row >= len(rows) {
		panic(fmt.Sprintf("country: row %d out of range for section %d (%d rows) in %s mode", row, section, len(rows), mode))
	}
	return rows[row]
}

func (v Views) section(mode ViewMode, section int) ([]Entry, bool) {
	if mode == Filtering {
		if section != 0 {
			return nil, false
		}
		return v.Filtered, true
	}
	switch section {
	case 0:
		return v.Common, true
	case 1:
		return v.All, true
	default:
		return nil, false
	}
}

// Listener receives the entry the user picked.
type Listener interface {
	CountrySelected(Entry)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Entry)

func (f ListenerFunc) CountrySelected(e Entry) { f(e) }

// Directory is the searchable country list. It is not safe for concurrent use.
type Directory struct {
	views    Views
	query    string
	mode     ViewMode
	listener Listener
}

// NewDirectory loads every territory src knows plus the ordered common codes.
func NewDirectory(src Source, commonCodes []string) *Directory {
	var all []string
	if src != nil {
		all = src.AllTerritoryCodes()
	}
	return &Directory{
		views: Views{
			Common: LoadCommon(commonCodes, src),
			All:    LoadAll(all, src),
		},
		mode: Browsing,
	}
}

// SetQuery switches to Filtering for a non-empty query and recomputes the
// results from scratch; an empty query returns to Browsing.
func (d *Directory) SetQuery(text string) {
	d.query = text
	if text == "" {
		d.mode = Browsing
		d.views.Filtered = nil
		return
	}
	d.mode = Filtering
	d.views.Filtered = Search(d.views.All, text)
}

func (d *Directory) Query() string  { return d.query }
func (d *Directory) Mode() ViewMode { return d.mode }

func (d *Directory) SectionCount() int {
	return d.views.Sections(d.mode)
}

func (d *Directory) RowCount(section int) int {
	return d.views.Rows(d.mode, section)
}

// EntryAt resolves (section, row) against the active view mode. It panics
// when row is not below RowCount(section).
func (d *Directory) EntryAt(section, row int) Entry {
	return d.views.Resolve(d.mode, section, row)
}

// SectionTitle returns the header for section, or "" when the section has none.
func (d *Directory) SectionTitle(section int) string {
	if d.mode == Filtering {
		return ""
	}
	switch section {
	case 0:
		return commonSectionTitle
	case 1:
		return allSectionTitle
	default:
		return ""
	}
}

// SetListener replaces the single selection listener. nil removes it.
func (d *Directory) SetListener(l Listener) {
	d.listener = l
}

// OnSelect forwards e to the listener, if any.
func (d *Directory) OnSelect(e Entry) {
	if d.listener == nil {
		return
	}
	d.listener.CountrySelected(e)
}

func (d *Directory) Common() []Entry   { return slices.Clone(d.views.Common) }
func (d *Directory) All() []Entry      { return slices.Clone(d.views.All) }
func (d *Directory) Filtered() []Entry { return slices.Clone(d.views.Filtered) }
