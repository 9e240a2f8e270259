package app

import (
	"context"
	"errors"
	"testing"

	"github.com/five82/scanboard/internal/feed"
	"github.com/five82/scanboard/internal/state"
)

func TestProgressWatcher_StoresCounters(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := newFakeStream("p", errors.New("eof"),
		`{"counter":1,"pending":3,"graded":0,"message":"scan"}`,
		`not json`,
		`{"counter":2,"pending":1,"graded":2,"message":"scan"}`,
	)
	sub := &fakeSubscriber{
		progress:  []dialResult{{err: errors.New("refused")}, {stream: stream}},
		exhausted: cancel,
	}
	store := &state.Store{}
	w := NewProgressWatcher(sub, store, 0, nil)
	w.after = immediately

	if err := w.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	snap := store.Snapshot()
	if !snap.HasProgress {
		t.Fatalf("HasProgress = false")
	}
	want := state.Progress{Counter: 2, Pending: 1, Graded: 2, Message: "scan"}
	if snap.Progress != want {
		t.Fatalf("Progress = %#v, want %#v", snap.Progress, want)
	}
	if snap.ProgressFailures != 0 {
		t.Fatalf("ProgressFailures = %d, want reset by the last good frame", snap.ProgressFailures)
	}
}

func TestProgressWatcher_DisabledReturnsImmediately(t *testing.T) {
	sub := &fakeSubscriber{progress: []dialResult{{err: feed.ErrProgressDisabled}}}
	w := NewProgressWatcher(sub, &state.Store{}, 0, nil)
	if err := w.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}
