package results

import "time"

// HighlightDuration is how long a newly added row stays highlighted.
const HighlightDuration = 2 * time.Second

// DefaultViewerPath is the route documents are opened under.
const DefaultViewerPath = "processed-document-viewer/"

// Event is a state transition applied through Table.Dispatch.
type Event interface {
	isEvent()
}

// AddRecord inserts a record at the top and returns to page 1. It is ignored
// while the table is paused.
type AddRecord struct{ Record Record }

// ResetTable empties the store and returns to page 1.
type ResetTable struct{}

// Reload discards all table state: records, query, page and pause.
type Reload struct{}

// SetQuery replaces the search query.
type SetQuery struct{ Query string }

// GotoPage selects a page number.
type GotoPage struct{ Page int }

// PrevPage moves back one page.
type PrevPage struct{}

// NextPage moves forward one page.
type NextPage struct{}

// SetPaused toggles whether incoming records are accepted.
type SetPaused struct{ Paused bool }

func (AddRecord) isEvent()  {}
func (ResetTable) isEvent() {}
func (Reload) isEvent()     {}
func (SetQuery) isEvent()   {}
func (GotoPage) isEvent()   {}
func (PrevPage) isEvent()   {}
func (NextPage) isEvent()   {}
func (SetPaused) isEvent()  {}

// Table owns the store, filter, page and pause state of one results view.
// It is not safe for concurrent use; callers serialize Dispatch.
type Table struct {
	store      Store
	filter     Filter
	pager      Paginator
	paused     bool
	now        func() time.Time
	viewerPath string
}

// Option configures a Table.
type Option func(*Table)

// WithClock overrides the clock used for row highlights.
func WithClock(now func() time.Time) Option {
	return func(t *Table) {
		if now != nil {
			t.now = now
		}
	}
}

// WithViewerPath sets the viewer route prefix used for Row.ViewerPath.
func WithViewerPath(path string) Option {
	return func(t *Table) {
		t.viewerPath = path
	}
}

// NewTable returns an empty table on page 1.
func NewTable(opts ...Option) *Table {
	t := &Table{now: time.Now, viewerPath: DefaultViewerPath}
	t.pager.Reset()
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Dispatch applies ev and reports whether the table changed.
func (t *Table) Dispatch(ev Event) bool {
	changed := t.apply(ev)
	t.pager.Clamp(TotalPages(t.visibleCount()))
	return changed
}

func (t *Table) apply(ev Event) bool {
	switch ev := ev.(type) {
	case AddRecord:
		if t.paused {
			return false
		}
		t.store.push(ev.Record, t.now())
		t.pager.Reset()
		return true
	case ResetTable:
		t.store.Clear()
		t.pager.Reset()
		return true
	case Reload:
		t.store.Clear()
		t.filter = Filter{}
		t.pager.Reset()
		t.paused = false
		return true
	case SetQuery:
		return t.filter.SetQuery(ev.Query)
	case GotoPage:
		if t.filter.Active() {
			return false
		}
		return t.pager.Goto(ev.Page, t.TotalPages())
	case PrevPage:
		if t.filter.Active() {
			return false
		}
		return t.pager.Prev()
	case NextPage:
		if t.filter.Active() {
			return false
		}
		return t.pager.Next(t.TotalPages())
	case SetPaused:
		if t.paused == ev.Paused {
			return false
		}
		t.paused = ev.Paused
		return true
	default:
		return false
	}
}

func (t *Table) visibleCount() int {
	if !t.filter.Active() {
		return t.store.Len()
	}
	return len(t.filter.Visible(&t.store))
}

// Len returns the number of stored records.
func (t *Table) Len() int { return t.store.Len() }

// Records returns a newest-first copy of every stored record.
func (t *Table) Records() []Record { return t.store.Records() }

// CurrentPage returns the current page number.
func (t *Table) CurrentPage() int { return t.pager.Current() }

// TotalPages returns the page count over the visible set.
func (t *Table) TotalPages() int { return TotalPages(t.visibleCount()) }

// Query returns the lowercased search query.
func (t *Table) Query() string { return t.filter.Query() }

// Filtering reports whether a non-blank query is in effect.
func (t *Table) Filtering() bool { return t.filter.Active() }

// Paused reports whether incoming records are being ignored.
func (t *Table) Paused() bool { return t.paused }

// Row is one rendered table row.
type Row struct {
	Index       int
	Record      Record
	ViewerPath  string
	Highlighted bool
}

// View is the rendered state of a Table.
type View struct {
	Rows            []Row
	Controls        []Control
	ControlsVisible bool
	CurrentPage     int
	TotalPages      int
	VisibleCount    int
	TotalCount      int
	Query           string
	Filtering       bool
	Paused          bool
}

// View materializes the rows to display. While filtering every match is
// shown unpaginated and page controls are hidden. Otherwise the current
// page window over the whole store is shown.
func (t *Table) View() View {
	now := t.now()
	v := View{
		CurrentPage: t.pager.Current(),
		TotalCount:  t.store.Len(),
		Query:       t.filter.Query(),
		Filtering:   t.filter.Active(),
		Paused:      t.paused,
	}

	if v.Filtering {
		visible := t.filter.Visible(&t.store)
		v.VisibleCount = len(visible)
		v.TotalPages = TotalPages(len(visible))
		v.Rows = make([]Row, 0, len(visible))
		for _, idx := range visible {
			v.Rows = append(v.Rows, t.row(idx, now))
		}
		return v
	}

	v.VisibleCount = t.store.Len()
	v.TotalPages = TotalPages(v.VisibleCount)
	start, end := Window(v.VisibleCount, v.CurrentPage)
	v.Rows = make([]Row, 0, end-start)
	for idx := start; idx < end; idx++ {
		v.Rows = append(v.Rows, t.row(idx, now))
	}
	v.Controls = Controls(v.CurrentPage, v.TotalPages)
	v.ControlsVisible = len(v.Controls) > 0
	return v
}

func (t *Table) row(idx int, now time.Time) Row {
	rec := t.store.At(idx)
	added := t.store.addedAt(idx)
	return Row{
		Index:       idx,
		Record:      rec,
		ViewerPath:  rec.ViewerPath(t.viewerPath),
		Highlighted: !added.IsZero() && now.Sub(added) < HighlightDuration,
	}
}

// NextHighlightExpiry returns when the most recent highlight ends, or the
// zero time when no row is highlighted.
func (t *Table) NextHighlightExpiry() time.Time {
	if t.store.Len() == 0 {
		return time.Time{}
	}
	added := t.store.addedAt(0)
	if added.IsZero() {
		return time.Time{}
	}
	expiry := added.Add(HighlightDuration)
	if !expiry.After(t.now()) {
		return time.Time{}
	}
	return expiry
}
