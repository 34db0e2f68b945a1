package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MessageType identifies websocket payload variants.
type MessageType string

const (
	TypeUserMessage    MessageType = "user_message"
	TypeClientControl  MessageType = "client_control"
	TypeAssistantLine  MessageType = "assistant_line"
	TypeTurnOutcome    MessageType = "turn_outcome"
	TypePromptRequest  MessageType = "prompt_request"
	TypeSessionStarted MessageType = "session_started"
	TypeSessionEnded   MessageType = "session_ended"
	TypeErrorEvent     MessageType = "error_event"
)

var ErrUnsupportedType = errors.New("unsupported message type")

type Envelope struct {
	Type MessageType `json:"type"`
}

// UserMessage carries one user utterance into the dialogue.
type UserMessage struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Text      string      `json:"text"`
	TSMs      int64       `json:"ts_ms,omitempty"`
}

// ClientControl carries out-of-band actions ("end").
type ClientControl struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Action    string      `json:"action"`
}

// AssistantLine is one displayed line from the assistant. Tag mirrors the
// rendering tags of the chat transcript (assistant, greeting, response,
// system).
type AssistantLine struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Text      string      `json:"text"`
	Tag       string      `json:"tag,omitempty"`
}

// TurnOutcome reports how the last user message was handled.
type TurnOutcome struct {
	Type           MessageType `json:"type"`
	SessionID      string      `json:"session_id"`
	Outcome        string      `json:"outcome"`
	Success        bool        `json:"success"`
	QuotaRemaining int         `json:"quota_remaining"`
}

// PromptRequest asks the client for the next line of input.
type PromptRequest struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Prompt    string      `json:"prompt"`
}

// SessionStarted confirms the bootstrap and carries the welcome lines.
type SessionStarted struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Lines     []string    `json:"lines"`
}

// SessionEnded signals normal termination.
type SessionEnded struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Reason    string      `json:"reason"`
}

type ErrorEvent struct {
	Type      MessageType `json:"type"`
	SessionID string      `json:"session_id"`
	Code      string      `json:"code"`
	Detail    string      `json:"detail"`
}

// ParseClientMessage decodes and validates one inbound frame.
func ParseClientMessage(raw []byte) (any, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("invalid envelope: %w", err)
	}

	switch env.Type {
	case TypeUserMessage:
		var msg UserMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, err
		}
		if msg.Text == "" {
			return nil, errors.New("invalid user_message")
		}
		return msg, nil
	case TypeClientControl:
		var msg ClientControl
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, err
		}
		if msg.Action == "" {
			return nil, errors.New("invalid client_control")
		}
		return msg, nil
	default:
		return nil, ErrUnsupportedType
	}
}
