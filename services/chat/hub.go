package chat

import (
	"context"
	"time"

	"grindsphere/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

// StreamMessages subscribes the websocket connection to the user's live
// channel and relays published messages until the connection or context
// closes. The Redis subscription lives exactly as long as the connection.
func (s *DefaultChatService) StreamMessages(ctx context.Context, conn *websocket.Conn, uid string) {
	log := utils.GetLogger()

	sub := s.Redis.Subscribe(ctx, utils.ChatChannelPrefix+uid)
	defer sub.Close()
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Drain client frames so pongs and close frames are processed.
	readClosed := make(chan struct{})
	go func() {
		defer close(readClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Debug("StreamMessages: write failed, closing",
					zap.String("uid", uid), zap.Error(err))
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-readClosed:
			return
		case <-ctx.Done():
			return
		}
	}
}
