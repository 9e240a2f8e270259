package feed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Subscriber opens push channels on the scanning server. It is implemented
// by *Client and faked in tests.
type Subscriber interface {
	DialFiles(ctx context.Context) (Stream, error)
	DialProgress(ctx context.Context) (Stream, error)
}

// Ensure Client implements Subscriber at compile time.
var _ Subscriber = (*Client)(nil)

// Stream is one open push channel.
type Stream interface {
	ReadMessage() ([]byte, error)
	WriteJSON(v any) error
	Close() error
	ID() string
}

var _ Stream = (*Conn)(nil)

// ConnectionHeader carries the per-connection id on the handshake.
const ConnectionHeader = "X-Scanboard-Connection"

// ErrProgressDisabled is returned by DialProgress when no progress path is
// configured.
var ErrProgressDisabled = errors.New("progress channel disabled")

const (
	defaultServer    = "127.0.0.1:8000"
	defaultUserAgent = "scanboard/0.1"
	handshakeTimeout = 5 * time.Second
)

// Paths locates the server's websocket routes. An empty Progress disables
// the progress channel.
type Paths struct {
	Files    string
	Progress string
}

// Client dials the scanning server's websocket routes.
type Client struct {
	baseURL   *url.URL
	paths     Paths
	dialer    *websocket.Dialer
	userAgent string
}

// NewClient builds a Client for the server host:port or URL.
func NewClient(server string, paths Paths) (*Client, error) {
	base, err := parseBaseURL(server)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		paths:   paths,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// DialFiles opens the results channel.
func (c *Client) DialFiles(ctx context.Context) (Stream, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	conn, err := c.dial(ctx, c.paths.Files)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// DialProgress opens the scan progress channel.
func (c *Client) DialProgress(ctx context.Context) (Stream, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(c.paths.Progress) == "" {
		return nil, ErrProgressDisabled
	}
	conn, err := c.dial(ctx, c.paths.Progress)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// FilesURL returns the websocket URL of the results channel.
func (c *Client) FilesURL() string {
	return c.socketURL(c.paths.Files).String()
}

// ViewerURL returns the browser URL for a row's viewer path.
func (c *Client) ViewerURL(viewerPath string) string {
	rel := &url.URL{Path: "/" + strings.TrimLeft(viewerPath, "/")}
	return c.baseURL.ResolveReference(rel).String()
}

func (c *Client) dial(ctx context.Context, path string) (*Conn, error) {
	target := c.socketURL(path)
	id := uuid.NewString()
	header := http.Header{}
	header.Set("User-Agent", c.userAgent)
	header.Set(ConnectionHeader, id)

	ws, resp, err := c.dialer.DialContext(ctx, target.String(), header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: status %d: %w", target.Path, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("dial %s: %w", target.Path, err)
	}
	return &Conn{ws: ws, id: id}, nil
}

func (c *Client) socketURL(path string) *url.URL {
	u := *c.baseURL
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path = "/" + strings.TrimLeft(path, "/")
	return &u
}

// Conn is a websocket Stream. Reads must come from one goroutine; writes are
// serialized internally.
type Conn struct {
	ws *websocket.Conn
	id string

	writeMu sync.Mutex
}

// ReadMessage blocks until the next frame arrives.
func (c *Conn) ReadMessage() ([]byte, error) {
	_, data, err := c.ws.ReadMessage()
	return data, err
}

// WriteJSON sends v as a text frame.
func (c *Conn) WriteJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteJSON(v)
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.ws.Close()
}

// ID returns the connection id sent on the handshake.
func (c *Conn) ID() string {
	return c.id
}

// IsClosed reports whether err means the connection was closed rather than
// broken.
func IsClosed(err error) bool {
	if err == nil {
		return false
	}
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return true
	}
	return errors.Is(err, net.ErrClosed)
}

func parseBaseURL(server string) (*url.URL, error) {
	trimmed := strings.TrimSpace(server)
	if trimmed == "" {
		trimmed = defaultServer
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server %q: %w", server, err)
	}
	switch u.Scheme {
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	case "http", "https":
	default:
		return nil, fmt.Errorf("parse server %q: unsupported scheme %q", server, u.Scheme)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
