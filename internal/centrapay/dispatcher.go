package centrapay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/port402/centrapay-cli/internal/client"
	"github.com/port402/centrapay-cli/internal/logging"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 10 << 20 // 10MB

// Settings holds the merchant credentials and service locations.
type Settings struct {
	BaseURL    string
	PayBaseURL string
	MerchantID string
	ClientID   string
	APIKey     string
}

// Dispatcher sends payment request calls. Each call performs exactly one
// HTTP request; nothing is retried.
type Dispatcher struct {
	settings Settings
	http     *client.Client
}

// NewDispatcher creates a Dispatcher. The API key header is attached to every
// call even when the key is empty.
func NewDispatcher(settings Settings, opts ...client.Option) *Dispatcher {
	opts = append([]client.Option{client.WithHeader(HeaderAPIKey, settings.APIKey)}, opts...)
	return &Dispatcher{
		settings: settings,
		http:     client.New(opts...),
	}
}

// RequestID returns the correlation id attached to calls from this dispatcher.
func (d *Dispatcher) RequestID() string {
	return d.http.RequestID()
}

// PayURL builds the payment page URL for requestID.
func (d *Dispatcher) PayURL(requestID string) string {
	return PayURL(d.settings.PayBaseURL, requestID)
}

// Create creates a payment request for amount of asset. The response must
// carry a requestId; its absence yields ErrMissingRequestID alongside the result.
func (d *Dispatcher) Create(ctx context.Context, amount, asset string) (*Result, error) {
	req := Request{
		MerchantID: d.settings.MerchantID,
		ClientID:   d.settings.ClientID,
		Amount:     amount,
		Asset:      asset,
	}

	result, err := d.send(ctx, http.MethodPost, EndpointCreate, req.Values())
	if err != nil {
		return result, err
	}
	if result.RequestID == "" {
		return result, ErrMissingRequestID
	}
	return result, nil
}

// Info fetches the status of a payment request. method selects GET (query
// parameters) or POST (form body).
func (d *Dispatcher) Info(ctx context.Context, requestID, method string) (*Result, error) {
	method = strings.ToUpper(method)
	if method == "" {
		method = http.MethodGet
	}
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("unsupported method %q for %s (use GET or POST)", method, EndpointInfo)
	}

	values := url.Values{FieldRequestID: {requestID}}
	return d.send(ctx, method, EndpointInfo, values)
}

// Pay pays a payment request from the selected ledger.
func (d *Dispatcher) Pay(ctx context.Context, pay PayRequest) (*Result, error) {
	return d.send(ctx, http.MethodPost, EndpointPay, pay.Values())
}

// send performs the call. For non-2xx responses it returns both the result
// (so the body can be shown) and an *HTTPError.
func (d *Dispatcher) send(ctx context.Context, method, endpoint string, values url.Values) (*Result, error) {
	logger := logging.FromContext(ctx)
	target := d.settings.BaseURL + endpoint

	var (
		reqResult *client.RequestResult
		err       error
	)
	if method == http.MethodGet {
		reqResult, err = d.http.GetQuery(ctx, target, values)
	} else {
		reqResult, err = d.http.PostForm(ctx, target, values)
	}
	if err != nil {
		logger.Error("%s %s failed: %v", method, endpoint, err)
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer reqResult.Response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(reqResult.Response.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("reading response: %w", err)}
	}

	result := &Result{
		Endpoint:   endpoint,
		Method:     method,
		StatusCode: reqResult.Response.StatusCode,
		Status:     reqResult.Response.Status,
		LatencyMs:  reqResult.LatencyMs,
		Body:       body,
		Curl:       reqResult.Curl,
	}
	logger.Debug(":: %s %s -> %d (%d ms)", method, endpoint, result.StatusCode, result.LatencyMs)

	if result.StatusCode < 200 || result.StatusCode > 299 {
		httpErr := &HTTPError{
			Endpoint:   endpoint,
			StatusCode: result.StatusCode,
			Status:     result.Status,
			Body:       body,
			RetryAfter: client.ParseRetryAfter(reqResult.Response),
		}
		logger.Error("%s %s -> %d: %s", method, endpoint, result.StatusCode, strings.TrimSpace(string(body)))
		return result, httpErr
	}

	if id, ok := extractRequestID(body); ok {
		result.RequestID = id
		result.PayURL = d.PayURL(id)
	}
	return result, nil
}
