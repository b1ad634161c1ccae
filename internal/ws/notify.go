package ws

import (
	"encoding/json"
	"log"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/domain/notification"
)

// Event is the envelope written to notification sockets.
type Event struct {
	Type    string           `json:"type"`
	Payload dto.Notification `json:"payload"`
}

const EventTypeNotification = "notification"

// Pusher adapts the hub to the notification service's push port.
type Pusher struct {
	hub    *Hub
	logger *log.Logger
}

func NewPusher(hub *Hub, logger *log.Logger) *Pusher {
	return &Pusher{hub: hub, logger: logger}
}

func (p *Pusher) PushToUser(userID int64, payload notification.Notification) {
	if p == nil || p.hub == nil {
		return
	}

	evt := Event{
		Type:    EventTypeNotification,
		Payload: dto.FromNotification(payload),
	}

	message, err := json.Marshal(evt)
	if err != nil {
		if p.logger != nil {
			p.logger.Printf("[WS] marshal event failed | error=%v", err)
		}
		return
	}

	p.hub.Send(userID, message)
}
