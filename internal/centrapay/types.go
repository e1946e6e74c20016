// Package centrapay implements the payment request API calls: create, info and pay.
package centrapay

import (
	"encoding/json"
	"net/url"
	"strings"
)

// API endpoints, relative to the service base URL.
const (
	EndpointCreate = "/payments/api/requests.create"
	EndpointInfo   = "/payments/api/requests.info"
	EndpointPay    = "/payments/api/requests.pay"
)

// HeaderAPIKey carries the merchant API key on every call.
const HeaderAPIKey = "x-api-key"

// Form and query field names.
const (
	FieldMerchantID    = "merchantId"
	FieldClientID      = "clientId"
	FieldAmount        = "amount"
	FieldAsset         = "asset"
	FieldRequestID     = "requestId"
	FieldLedger        = "ledger"
	FieldAuthorization = "authorization"
)

// Request is the payload for creating a payment request.
type Request struct {
	MerchantID string
	ClientID   string
	Amount     string
	Asset      string
}

// Values encodes the request as form fields. The merchant and client ids come
// from the environment and are left out when unset; amount and asset are
// always sent as given.
func (r Request) Values() url.Values {
	values := formValues(
		FieldMerchantID, r.MerchantID,
		FieldClientID, r.ClientID,
	)
	values.Set(FieldAmount, r.Amount)
	values.Set(FieldAsset, r.Asset)
	return values
}

// PayRequest is the payload for paying a payment request.
type PayRequest struct {
	RequestID     string
	Ledger        string
	Authorization string
}

// Values encodes the pay request as form fields, empty ones included.
func (p PayRequest) Values() url.Values {
	return url.Values{
		FieldRequestID:     {p.RequestID},
		FieldLedger:        {p.Ledger},
		FieldAuthorization: {p.Authorization},
	}
}

// Result is the outcome of an API call that received a response.
type Result struct {
	Endpoint   string `json:"endpoint"`
	Method     string `json:"method"`
	StatusCode int    `json:"status"`
	Status     string `json:"statusText"`
	LatencyMs  int64  `json:"latencyMs"`

	// RequestID is taken verbatim from the response's requestId field, if any.
	RequestID string `json:"requestId,omitempty"`
	// PayURL is set whenever RequestID is.
	PayURL string `json:"payUrl,omitempty"`

	// Body is the raw response body.
	Body []byte `json:"-"`
	// Curl is the equivalent curl command of the call.
	Curl string `json:"-"`
}

// JSON returns the body as raw JSON when it is valid JSON, otherwise as a
// JSON string.
func (r *Result) JSON() json.RawMessage {
	if json.Valid(r.Body) {
		return json.RawMessage(r.Body)
	}
	quoted, _ := json.Marshal(string(r.Body))
	return json.RawMessage(quoted)
}

// PayURL builds the payment page URL for a request id.
func PayURL(payBaseURL, requestID string) string {
	return strings.TrimRight(payBaseURL, "/") + "/" + requestID
}

// formValues builds url.Values from key/value pairs, skipping empty values.
func formValues(pairs ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			values.Set(pairs[i], pairs[i+1])
		}
	}
	return values
}

// extractRequestID reads the requestId field from a JSON body.
func extractRequestID(body []byte) (string, bool) {
	var payload struct {
		RequestID json.RawMessage `json:"requestId"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.RequestID) == 0 {
		return "", false
	}

	var id string
	if err := json.Unmarshal(payload.RequestID, &id); err == nil {
		return id, id != ""
	}

	// Non-string identifiers are used verbatim
	raw := string(payload.RequestID)
	if raw == "null" {
		return "", false
	}
	return raw, true
}
