// Package results holds the live results table: the row store, the search
// filter, the paginator and the Table state object that ties them together.
//
// # Overview
//
// A Store keeps records newest first, with index 0 the latest arrival. A
// Filter narrows them by a case-insensitive substring over file name and
// score. A Paginator tracks the current page over RowsPerPage rows. Table
// owns one of each plus the pause flag and is the only type callers mutate.
//
// # Architecture
//
//	          Dispatch(Event)
//	                │
//	                v
//	┌────────────────────────────────┐
//	│ Table                          │
//	│  ┌───────┐ ┌────────┐ ┌──────┐ │
//	│  │ Store │ │ Filter │ │ Page │ │
//	│  └───────┘ └────────┘ └──────┘ │
//	│  paused, clock, viewer prefix  │
//	└───────────────┬────────────────┘
//	                │ View()
//	                v
//	      Rows, Controls, counts
//
// # Events
//
// Every mutation goes through Table.Dispatch, which reports whether anything
// changed:
//
//	AddRecord   insert at the top, return to page 1 (ignored while paused)
//	ResetTable  empty the store, return to page 1; query and pause survive
//	Reload      empty the store, clear the query, return to page 1, unpause
//	SetQuery    replace the query (lowercased; whitespace only means none)
//	GotoPage    select a page; ignored out of range or while filtering
//	PrevPage    back one page; ignored on page 1 or while filtering
//	NextPage    forward one page; ignored on the last page or while filtering
//	SetPaused   set the pause flag
//
// # Page Clamping
//
// After each event the current page is clamped into
// [1, max(1, TotalPages(visible))], where visible is the match count while a
// query is active and the store size otherwise. The clamp is not undone:
// with 15 records on page 3, a query with 7 matches pulls the page to 2, and
// clearing the query leaves it on page 2.
//
// # View Semantics
//
// Table.View materializes what should be drawn:
//
//   - no query: the RowsPerPage window of the current page, plus page controls
//     (« 1 2 3 ») when there is more than one page
//   - query: every matching row, unpaginated, with page controls hidden
//
// Row.Index is the position in the full store, so numbering is stable while
// filtering. Row.ViewerPath joins the viewer prefix with the document id,
// which is the record id without its "file_" prefix.
//
// # Highlights
//
// A row is highlighted for HighlightDuration after it was added, measured
// against the Table's clock. The clock is time.Now unless WithClock replaces
// it. NextHighlightExpiry tells a renderer when to redraw so the highlight
// disappears without another event.
//
// # Concurrency Model
//
// Table is a plain value owner with no locking. The terminal UI serializes
// events through the bubbletea loop and the headless tail mode owns its
// table from a single goroutine. Records returns a copy, so the result may
// be handed to another goroutine.
//
// # Usage Example
//
//	t := results.NewTable(results.WithViewerPath(cfg.ViewerPath))
//	t.Dispatch(results.AddRecord{Record: rec})
//	t.Dispatch(results.SetQuery{Query: "invoice"})
//
//	v := t.View()
//	for _, row := range v.Rows {
//	    fmt.Println(row.Index+1, row.Record.FileName, row.Record.Score)
//	}
//
// # Testing Considerations
//
// Tests inject a fixed clock with WithClock and drive the table only through
// Dispatch, then assert on View. No goroutines or timers are involved.
package results
