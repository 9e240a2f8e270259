package app

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/five82/scanboard/internal/feed"
)

type fakeStream struct {
	id     string
	frames chan []byte
	endErr error

	mu      sync.Mutex
	written []any
	once    sync.Once
	done    chan struct{}
}

func newFakeStream(id string, endErr error, frames ...string) *fakeStream {
	ch := make(chan []byte, len(frames))
	for _, f := range frames {
		ch <- []byte(f)
	}
	close(ch)
	return &fakeStream{id: id, frames: ch, endErr: endErr, done: make(chan struct{})}
}

// newBlockingStream never yields a frame until closed.
func newBlockingStream(id string) *fakeStream {
	return &fakeStream{id: id, frames: make(chan []byte), done: make(chan struct{})}
}

func (s *fakeStream) ReadMessage() ([]byte, error) {
	select {
	case f, ok := <-s.frames:
		if !ok {
			return nil, s.endErr
		}
		return f, nil
	case <-s.done:
		return nil, net.ErrClosed
	}
}

func (s *fakeStream) WriteJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written = append(s.written, v)
	return nil
}

func (s *fakeStream) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

func (s *fakeStream) ID() string { return s.id }

func (s *fakeStream) Written() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]any(nil), s.written...)
}

type dialResult struct {
	stream *fakeStream
	err    error
}

// fakeSubscriber hands out queued dial results. Once a queue is empty it
// calls exhausted and fails with the context error.
type fakeSubscriber struct {
	mu        sync.Mutex
	files     []dialResult
	progress  []dialResult
	exhausted func()
}

func (f *fakeSubscriber) DialFiles(ctx context.Context) (feed.Stream, error) {
	return f.next(ctx, &f.files)
}

func (f *fakeSubscriber) DialProgress(ctx context.Context) (feed.Stream, error) {
	return f.next(ctx, &f.progress)
}

func (f *fakeSubscriber) next(ctx context.Context, queue *[]dialResult) (feed.Stream, error) {
	f.mu.Lock()
	if len(*queue) == 0 {
		f.mu.Unlock()
		if f.exhausted != nil {
			f.exhausted()
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}
	r := (*queue)[0]
	*queue = (*queue)[1:]
	f.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.stream, nil
}

var _ feed.Subscriber = (*fakeSubscriber)(nil)

func immediately(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}
