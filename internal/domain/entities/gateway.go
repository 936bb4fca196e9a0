package entities

import "encoding/json"

// GatewayInitResult is the normalized outcome of the gateway's session-create
// call. GatewayURL is where the browser must be redirected to pay.
type GatewayInitResult struct {
	GatewayURL string          `json:"gateway_url"`
	SessionKey string          `json:"sessionkey,omitempty"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

// GatewayQueryResult is the normalized outcome of a transactionQuery call.
//
// The gateway returns either a single transaction object or an element list
// when several transactions share a tran_id; Elements always carries the
// flattened list, status taken from the first element.
type GatewayQueryResult struct {
	Status   string                   `json:"status"`
	Elements []map[string]interface{} `json:"elements,omitempty"`
	Raw      json.RawMessage          `json:"raw,omitempty"`
}

// WebhookAction tells the hosting payment module what to do with a webhook.

type WebhookAction string

const (
	WebhookActionAuthorized   WebhookAction = "authorized"
	WebhookActionCanceled     WebhookAction = "canceled"
	WebhookActionNotSupported WebhookAction = "not_supported"
)

// WebhookResult pairs the action with the session identity and amount the
// payment module needs to act on it.
type WebhookResult struct {
	Action    WebhookAction `json:"action"`
	SessionID string        `json:"session_id,omitempty"`
	Amount    string        `json:"amount,omitempty"`
}
