package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/linskybing/form-console/internal/session"
)

// WatchSession opens the session stream of the held token. The returned
// channel is closed when the stream ends; stop closes the connection and
// waits for the reader to exit.
func (c *Client) WatchSession(ctx context.Context) (<-chan session.Event, func(), error) {
	token := c.Token()
	if token == "" {
		return nil, nil, ErrNoToken
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL(c.baseURL)+"/ws/session", header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			return nil, nil, decodeError(resp)
		}
		return nil, nil, fmt.Errorf("dial session stream: %w", err)
	}

	events := make(chan session.Event, 8)
	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(events)
		for {
			var e session.Event
			if err := conn.ReadJSON(&e); err != nil {
				return
			}
			select {
			case events <- e:
			case <-quit:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(quit)
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			_ = conn.Close()
			<-done
		})
	}
	return events, stop, nil
}

func wsURL(base string) string {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base
}
