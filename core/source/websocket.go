package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/emitter/core/emitter"
	"github.com/dmitrymomot/emitter/core/logger"
)

// WebSocketMessage is one frame read from a websocket connection.
type WebSocketMessage struct {
	Type int
	Data []byte
}

// WebSocket returns an emitter that dials url on Start and emits every message read from
// the connection. Stop sends a close frame and closes the connection; the next Start dials
// again. A connection closed by the peer ends the loop.
//
// Example:
//
//	feed := source.WebSocket("wss://stream.example.com/trades",
//	    source.WithHeader(http.Header{"Authorization": {"Bearer " + token}}),
//	)
//	feed.Start()
//	defer feed.Stop()
func WebSocket(url string, opts ...Option) *emitter.Emitter[WebSocketMessage] {
	o := newOptions(opts)
	return newSource("websocket", o, func(ctx context.Context, emit func(WebSocketMessage)) (func(), error) {
		conn, resp, err := o.dialer.DialContext(ctx, url, o.header)
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDialFailed, err)
		}

		unblock := context.AfterFunc(ctx, func() {
			deadline := time.Now().Add(time.Second)
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = conn.WriteControl(websocket.CloseMessage, msg, deadline)
			_ = conn.Close()
		})

		return func() {
			defer func() {
				if unblock() {
					_ = conn.Close()
				}
			}()

			for {
				typ, data, err := conn.ReadMessage()
				if err != nil {
					if ctx.Err() == nil && !isExpectedClose(err) {
						o.logger.WarnContext(ctx, "websocket read failed",
							logger.Source("websocket"),
							logger.Emitter(o.name),
							logger.Error(err))
					}
					return
				}
				emit(WebSocketMessage{Type: typ, Data: data})
			}
		}, nil
	})
}

func isExpectedClose(err error) bool {
	var closeErr *websocket.CloseError
	if !errors.As(err, &closeErr) {
		return false
	}
	return closeErr.Code == websocket.CloseNormalClosure || closeErr.Code == websocket.CloseGoingAway
}
