package runner

import (
	"context"
	"log"

	"github.com/crewcord/crewcord/internal/models"
	sessionService "github.com/crewcord/crewcord/internal/services/session"
	"github.com/gorilla/websocket"
)

// subscribeRequest tells the capture feed which lobby to watch
type subscribeRequest struct {
	Region string `json:"region"`
	Code   string `json:"code"`
}

// phaseMessage is one frame from the capture feed
type phaseMessage struct {
	Phase string `json:"phase"`
}

// SocketClient streams phase events from a capture feed over a websocket
type SocketClient struct {
	url    string
	dialer *websocket.Dialer
}

// NewSocketClient creates a new SocketClient for the given feed URL
func NewSocketClient(url string) *SocketClient {
	return &SocketClient{
		url:    url,
		dialer: websocket.DefaultDialer,
	}
}

// Connect dials the feed, subscribes to the lobby and streams its phases.
// The returned channel closes when the socket does.
func (c *SocketClient) Connect(ctx context.Context, region models.Region, code string) (<-chan Event, error) {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, err
	}

	if err := conn.WriteJSON(subscribeRequest{
		Region: string(region),
		Code:   code,
	}); err != nil {
		_ = conn.Close()
		return nil, err
	}

	events := make(chan Event)

	// Closing the connection on ctx cancellation unblocks the read loop
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	go func() {
		defer close(events)
		defer func() {
			_ = conn.Close()
		}()

		for {
			var msg phaseMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					log.Printf("capture feed read failed: %v", err)
				}
				return
			}

			select {
			case events <- Event{Phase: sessionService.GamePhase(msg.Phase)}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}
