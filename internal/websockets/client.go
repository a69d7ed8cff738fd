package websockets

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait = 10 * time.Second

	pongWait = 60 * time.Second

	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 1024 * 1024 // 1MB
)

type MessageType string

const (
	TypeScreensaverUpdate MessageType = "screensaver.update"
	TypePromotionUpdate   MessageType = "promotion.update"
	TypeMenuUpdate        MessageType = "menu.update"
	TypeTabletRegister    MessageType = "tablet.register"
	TypeError             MessageType = "error"
	TypePing              MessageType = "ping"
	TypePong              MessageType = "pong"
)

type ClientType string

const (
	ClientTypeTablet ClientType = "tablet"
	ClientTypeAdmin  ClientType = "admin"
)

type Message struct {
	Type         MessageType     `json:"type"`
	Data         json.RawMessage `json:"data"`
	RestaurantID string          `json:"restaurant_id,omitempty"`
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	userID string

	clientType ClientType

	restaurantID string
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string, clientType ClientType) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, 256),
		userID:     userID,
		clientType: clientType,
	}
}

func (c *Client) SetRestaurantID(restaurantID string) {
	c.restaurantID = restaurantID
	if restaurantID != "" {
		c.hub.RegisterTenantClient(c, restaurantID)
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("user_id", c.userID).Msg("websocket closed unexpectedly")
			}
			break
		}

		var wsMessage Message
		if err := json.Unmarshal(message, &wsMessage); err != nil {
			log.Warn().Err(err).Msg("error unmarshaling websocket message")
			continue
		}

		switch wsMessage.Type {
		case TypeTabletRegister:
			// Tablets announce which restaurant they belong to so the hub
			// can route screensaver refreshes to them.
			var registerData struct {
				RestaurantID string `json:"restaurant_id"`
			}
			if err := json.Unmarshal(wsMessage.Data, &registerData); err != nil {
				log.Warn().Err(err).Msg("error unmarshaling tablet register data")
				continue
			}
			c.SetRestaurantID(registerData.RestaurantID)

		case TypePing:
			pongMsg, _ := json.Marshal(Message{Type: TypePong})
			c.send <- pongMsg

		default:
			c.hub.broadcast <- message
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func ServeWs(hub *Hub, conn *websocket.Conn, userID string, clientType ClientType) {
	client := NewClient(hub, conn, userID, clientType)

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}
