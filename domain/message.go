package domain

import (
	"time"
)

type Update struct {
	UpdateId int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

type Message struct {
	MessageId int64  `json:"message_id"`
	From      *User  `json:"from,omitempty"`
	Chat      Chat   `json:"chat"`
	Date      int64  `json:"date"`
	Text      string `json:"text,omitempty"`
}

type User struct {
	Id        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

type Chat struct {
	Id   int64  `json:"id"`
	Type string `json:"type"`
}

// Event is a single webhook delivery as seen by the dispatcher.
type Event struct {
	SecretToken string
	Update      Update
}

type InboundMessage struct {
	UpdateId   int64
	SenderId   string
	ChatId     int64
	Username   string
	Text       string
	ReceivedAt time.Time
}

func (m InboundMessage) Sender() Sender {
	return Sender{
		Id:       m.SenderId,
		ChatId:   m.ChatId,
		Username: m.Username,
	}
}

type Sender struct {
	Id       string
	ChatId   int64
	Username string
}
