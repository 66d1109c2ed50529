package realtime

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MessageTypeBoardUpdated is the only message type the channel relays.
const MessageTypeBoardUpdated = "board_updated"

const (
	maxActionTypeLen = 128
	actionPrefix     = "board/"
	actionSuffix     = "/fulfilled"
)

// ValidActionType reports whether v is a string of at most 128 characters
// shaped like "board/<noun>/fulfilled" with a non-empty noun.
func ValidActionType(v any) bool {
	s, ok := v.(string)
	if !ok || utf8.RuneCountInString(s) > maxActionTypeLen {
		return false
	}
	if len(s) <= len(actionPrefix)+len(actionSuffix) {
		return false
	}
	return strings.HasPrefix(s, actionPrefix) && strings.HasSuffix(s, actionSuffix)
}

// Inbound is a client message that passed validation.
type Inbound struct {
	ActionType string
	Payload    json.RawMessage
}

// Outbound is what every subscriber of the board receives.
type Outbound struct {
	Type       string          `json:"type"`
	ActionType string          `json:"action_type"`
	Payload    json.RawMessage `json:"payload"`
	SenderID   uuid.UUID       `json:"sender_id"`
	BoardID    uuid.UUID       `json:"board_id"`
}

// ParseInbound validates a raw client frame against the board the connection
// is bound to. Any shape violation yields ok=false; the caller drops the frame.
func ParseInbound(raw []byte, boardID uuid.UUID) (Inbound, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Inbound{}, false
	}

	var msgType string
	if err := json.Unmarshal(fields["type"], &msgType); err != nil || msgType != MessageTypeBoardUpdated {
		return Inbound{}, false
	}

	var actionType any
	if err := json.Unmarshal(fields["action_type"], &actionType); err != nil || !ValidActionType(actionType) {
		return Inbound{}, false
	}

	// A null board_id counts as absent.
	if rawBoard, present := fields["board_id"]; present && string(rawBoard) != "null" && !sameBoard(rawBoard, boardID) {
		return Inbound{}, false
	}

	payload := fields["payload"]
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}

	return Inbound{ActionType: actionType.(string), Payload: payload}, true
}

func sameBoard(raw json.RawMessage, boardID uuid.UUID) bool {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	id, err := uuid.Parse(s)
	return err == nil && id == boardID
}
