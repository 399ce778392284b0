package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Quantity is the sales goal as the user typed it. JSON input may be a string
// or a number; either way the literal text is kept so it reaches the prompt
// unchanged.
type Quantity string

func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*q = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("goal: %w", err)
		}
		*q = Quantity(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("goal must be a string or number: %w", err)
	}
	// A numeric zero counts as "not provided", same as an empty form field.
	if f, err := n.Float64(); err == nil && f == 0 {
		*q = ""
		return nil
	}
	*q = Quantity(n.String())
	return nil
}

func (q Quantity) String() string { return string(q) }

// ProposalRequest is built fresh for every inbound call and dropped once the
// response is written.
type ProposalRequest struct {
	Product string   `json:"product"`
	Target  string   `json:"target"`
	Goal    Quantity `json:"goal"`
}

// Validate reports ErrMissingFields when any field is absent or blank.
// Values are not trimmed or rewritten.
func (r ProposalRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Product) == "" {
		missing = append(missing, "product")
	}
	if strings.TrimSpace(r.Target) == "" {
		missing = append(missing, "target")
	}
	if strings.TrimSpace(string(r.Goal)) == "" {
		missing = append(missing, "goal")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// ProposalResult carries the completion text verbatim.
type ProposalResult struct {
	Proposal string `json:"proposal"`
}
