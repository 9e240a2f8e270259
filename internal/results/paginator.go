package results

import "strconv"

// RowsPerPage is the fixed page size.
const RowsPerPage = 5

// TotalPages returns ceil(visible / RowsPerPage), or 0 when nothing is visible.
func TotalPages(visible int) int {
	if visible <= 0 {
		return 0
	}
	return (visible + RowsPerPage - 1) / RowsPerPage
}

// Window returns the half-open index range shown on page, clamped to visible.
func Window(visible, page int) (start, end int) {
	if page < 1 {
		page = 1
	}
	start = (page - 1) * RowsPerPage
	end = page * RowsPerPage
	if start > visible {
		start = visible
	}
	if end > visible {
		end = visible
	}
	return start, end
}

// ControlKind distinguishes page-control entries.
type ControlKind int

const (
	ControlPrev ControlKind = iota
	ControlPage
	ControlNext
)

// Control is one entry of the page-control strip.
type Control struct {
	Kind     ControlKind
	Page     int
	Active   bool
	Disabled bool
}

// Label returns the text drawn for the control.
func (c Control) Label() string {
	switch c.Kind {
	case ControlPrev:
		return "«"
	case ControlNext:
		return "»"
	default:
		return strconv.Itoa(c.Page)
	}
}

// Controls builds prev, one entry per page, and next. It returns nil when
// there is at most one page.
func Controls(current, total int) []Control {
	if total <= 1 {
		return nil
	}
	out := make([]Control, 0, total+2)
	out = append(out, Control{Kind: ControlPrev, Page: current - 1, Disabled: current <= 1})
	for n := 1; n <= total; n++ {
		out = append(out, Control{Kind: ControlPage, Page: n, Active: n == current})
	}
	out = append(out, Control{Kind: ControlNext, Page: current + 1, Disabled: current >= total})
	return out
}

// Paginator tracks the current page. The zero value is on page 1.
type Paginator struct {
	current int
}

// Current returns the current page, never below 1.
func (p *Paginator) Current() int {
	if p.current < 1 {
		return 1
	}
	return p.current
}

// Clamp pulls the current page into [1, max(1, total)].
func (p *Paginator) Clamp(total int) {
	cur := p.Current()
	if total < 1 {
		total = 1
	}
	if cur > total {
		cur = total
	}
	p.current = cur
}

// Goto selects page n. Out-of-range pages are ignored.
func (p *Paginator) Goto(n, total int) bool {
	if n < 1 || n > total || n == p.Current() {
		return false
	}
	p.current = n
	return true
}

// Prev moves back one page unless already on the first.
func (p *Paginator) Prev() bool {
	if p.Current() <= 1 {
		return false
	}
	p.current = p.Current() - 1
	return true
}

// Next moves forward one page unless already on the last.
func (p *Paginator) Next(total int) bool {
	if p.Current() >= total {
		return false
	}
	p.current = p.Current() + 1
	return true
}

// Reset returns to page 1.
func (p *Paginator) Reset() {
	p.current = 1
}
