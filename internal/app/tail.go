package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/five82/scanboard/internal/results"
	"github.com/five82/scanboard/internal/state"
)

// TailOptions configure the headless tail mode.
type TailOptions struct {
	Options
	Query string // reapplied after every reload
}

// Tail follows the files channel without a TUI, printing status changes and
// the current page of the table after each event.
func Tail(ctx context.Context, opts TailOptions, out io.Writer) error {
	cfg, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}
	logger := consoleLogger(cfg.LogLevel)

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	printer := newTailPrinter(out, results.NewTable(results.WithViewerPath(cfg.ViewerPath)), client.ViewerURL)
	printer.query = opts.Query
	printer.applyQuery()

	fmt.Fprintf(out, "following %s\n", client.FilesURL())
	channel := NewChannel(ChannelOptions{
		Subscriber: client,
		Sink:       printer.event,
		OnStatus:   printer.status,
		Policy:     ReconnectPolicy{Delay: cfg.ReconnectDelay, MaxAttempts: cfg.MaxReconnects},
		Logger:     logger,
	})
	return channel.Run(ctx)
}

// tailPrinter owns the table in tail mode. The channel goroutine is its only
// caller.
type tailPrinter struct {
	out       io.Writer
	table     *results.Table
	viewerURL func(string) string
	query     string
	now       func() time.Time
}

func newTailPrinter(out io.Writer, table *results.Table, viewerURL func(string) string) *tailPrinter {
	if viewerURL == nil {
		viewerURL = func(p string) string { return p }
	}
	return &tailPrinter{out: out, table: table, viewerURL: viewerURL, now: time.Now}
}

func (p *tailPrinter) applyQuery() {
	if p.query != "" {
		p.table.Dispatch(results.SetQuery{Query: p.query})
	}
}

func (p *tailPrinter) event(ev results.Event) {
	if !p.table.Dispatch(ev) {
		return
	}
	switch ev.(type) {
	case results.Reload:
		p.applyQuery()
		fmt.Fprintf(p.out, "%s reloaded\n", p.stamp())
		return
	case results.ResetTable:
		fmt.Fprintf(p.out, "%s table reset\n", p.stamp())
	}
	p.render()
}

func (p *tailPrinter) status(s state.Status, err error) {
	if err != nil {
		fmt.Fprintf(p.out, "%s status %s [%s]: %v\n", p.stamp(), s, s.Class(), err)
		return
	}
	fmt.Fprintf(p.out, "%s status %s [%s]\n", p.stamp(), s, s.Class())
}

func (p *tailPrinter) stamp() string {
	return p.now().Format("15:04:05")
}

func (p *tailPrinter) render() {
	v := p.table.View()
	summary := fmt.Sprintf("%d record(s), page %d/%d", v.TotalCount, v.CurrentPage, max(1, v.TotalPages))
	if v.Filtering {
		summary = fmt.Sprintf("%d of %d record(s) match %q", v.VisibleCount, v.TotalCount, v.Query)
	}
	fmt.Fprintln(p.out, summary)
	if len(v.Rows) == 0 {
		return
	}

	tbl := tablewriter.NewWriter(p.out)
	tbl.Header("#", "File", "Score", "Processed", "Viewer")
	for _, row := range v.Rows {
		_ = tbl.Append(
			strconv.Itoa(row.Index+1),
			row.Record.FileName,
			row.Record.Score,
			processedLabel(row.Record),
			p.viewerURL(row.ViewerPath),
		)
	}
	_ = tbl.Render()
}

func processedLabel(r results.Record) string {
	switch {
	case r.ProcessedAt.IsZero() && r.ProcessedBy == "":
		return "-"
	case r.ProcessedAt.IsZero():
		return r.ProcessedBy
	case r.ProcessedBy == "":
		return r.ProcessedAt.Local().Format("2006-01-02 15:04")
	default:
		return r.ProcessedAt.Local().Format("2006-01-02 15:04") + " by " + r.ProcessedBy
	}
}
