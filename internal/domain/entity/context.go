package entity

import "time"

// Speaker tags who produced a conversation turn.
type Speaker string

const (
	SpeakerCustomer  Speaker = "customer"
	SpeakerAssistant Speaker = "assistant"
)

// ConversationTurn is one exchange entry in the per-customer ring buffer.
type ConversationTurn struct {
	ID        string    `json:"id"`
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// VariantSlots holds the attribute values the customer has mentioned so far.
type VariantSlots struct {
	Size      string `json:"size,omitempty"`
	Material  string `json:"material,omitempty"`
	Attribute string `json:"attribute,omitempty"`
}

// CustomerContext is the per-customer conversational state that lets short
// elliptical replies ("es mediana") resolve against the service discussed in
// an earlier turn. It is owned and mutated exclusively by the context store.
type CustomerContext struct {
	CustomerID string `json:"customer_id"`
	// LastService is the last category keyword the customer mentioned
	// (e.g. "alfombra"), or the one the assistant's pending question
	// referred to.
	LastService string       `json:"last_service,omitempty"`
	Slots       VariantSlots `json:"slots"`
	// LastAskedAttribute is true while the assistant's previous turn was a
	// clarifying question about size/measurement/material. It is consumed
	// (reset) when the next customer message is merged against it.
	LastAskedAttribute bool               `json:"last_asked_attribute"`
	Turns              []ConversationTurn `json:"turns"`
	LastUsed           time.Time          `json:"last_used"`
}

// AppendTurn records an exchange, keeping at most maxTurns entries and
// dropping the oldest first.
func (c *CustomerContext) AppendTurn(turn ConversationTurn, maxTurns int) {
	c.Turns = append(c.Turns, turn)
	if maxTurns > 0 && len(c.Turns) > maxTurns {
		c.Turns = c.Turns[len(c.Turns)-maxTurns:]
	}
}
