package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckStatus_Constants(t *testing.T) {
	assert.Equal(t, CheckStatus("pass"), StatusPass)
	assert.Equal(t, CheckStatus("warn"), StatusWarn)
	assert.Equal(t, CheckStatus("fail"), StatusFail)
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status   CheckStatus
		expected string
	}{
		{StatusPass, "✓"},
		{StatusWarn, "⚠"},
		{StatusFail, "✗"},
		{CheckStatus("unknown"), "?"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, statusIcon(tt.status))
		})
	}
}

func TestCountChecks(t *testing.T) {
	tests := []struct {
		name         string
		checks       []Check
		expectedFail int
		expectedWarn int
	}{
		{"all pass", []Check{{Status: StatusPass}, {Status: StatusPass}}, 0, 0},
		{"one fail", []Check{{Status: StatusPass}, {Status: StatusFail}}, 1, 0},
		{"mixed", []Check{{Status: StatusWarn}, {Status: StatusFail}, {Status: StatusFail}}, 2, 1},
		{"empty", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failCount, warnCount := countChecks(tt.checks)
			assert.Equal(t, tt.expectedFail, failCount)
			assert.Equal(t, tt.expectedWarn, warnCount)
		})
	}
}

func TestPrintSummary_Success(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, &Summary{
		Command:    "request_create",
		Method:     "POST",
		Endpoint:   "/payments/api/requests.create",
		Status:     200,
		StatusText: "200 OK",
		LatencyMs:  42,
		Amount:     "10.00 USD",
		RequestID:  "req-1",
		PayURL:     "http://app.centrapay.com/pay/req-1",
	})

	out := buf.String()
	assert.Contains(t, out, "✓ request_create")
	assert.Contains(t, out, "Endpoint: POST /payments/api/requests.create")
	assert.Contains(t, out, "Status:   200 OK")
	assert.Contains(t, out, "Latency:  42ms")
	assert.Contains(t, out, "Amount:   10.00 USD")
	assert.Contains(t, out, "Pay URL:  http://app.centrapay.com/pay/req-1")
	assert.NotContains(t, out, "Checks:")
	assert.NotContains(t, out, "Error:")
}

func TestPrintSummary_Failure(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, &Summary{
		Command:    "request_pay",
		Method:     "POST",
		Endpoint:   "/payments/api/requests.pay",
		Status:     500,
		StatusText: "500 Internal Server Error",
		Error:      "request failed",
	})

	out := buf.String()
	assert.Contains(t, out, "✗ request_pay")
	assert.Contains(t, out, "Error: request failed")
	assert.Contains(t, out, "Hint:")
}

func TestPrintSummary_Checks(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, &Summary{
		Command:  "request_pay",
		Method:   "POST",
		Endpoint: "/payments/api/requests.pay",
		Checks: []Check{
			{Name: "Ledger", Status: StatusPass, Message: "Ethereum Mainnet"},
			{Name: "Authorization", Status: StatusWarn, Message: "unknown ledger"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "⚠ request_pay")
	assert.Contains(t, out, "✓ Ledger")
	assert.Contains(t, out, "⚠ Authorization")
	assert.Contains(t, out, "unknown ledger")
	assert.NotContains(t, out, "Ethereum Mainnet")
}

func TestFormatResponseBody(t *testing.T) {
	// Non-JSON should pass through unchanged
	assert.Equal(t, "not found", FormatResponseBody("not found", true))

	// Invalid JSON should pass through unchanged
	assert.Equal(t, "{invalid json", FormatResponseBody("{invalid json", true))

	// Valid JSON is untouched when not pretty
	validJSON := `{"key":"value"}`
	assert.Equal(t, validJSON, FormatResponseBody(validJSON, false))

	// and indented when pretty
	assert.Equal(t, "{\n  \"key\": \"value\"\n}", FormatResponseBody(validJSON, true))

	// Trailing newlines are dropped
	assert.Equal(t, validJSON, FormatResponseBody(validJSON+"\n", false))
}

func TestFormatResponseBody_TooLarge(t *testing.T) {
	large := `{"data":"` + string(bytes.Repeat([]byte("x"), maxPrettyPrintSize)) + `"}`
	assert.Equal(t, large, FormatResponseBody(large, true))
}

func TestPrintResponse_NotTerminal(t *testing.T) {
	var buf bytes.Buffer
	PrintResponse(&buf, []byte(`{"requestId":"abc"}`))
	assert.Equal(t, "{\"requestId\":\"abc\"}\n", buf.String())
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("boom"))
	PrintWarning(&buf, "careful")
	PrintInfo(&buf, "hello")
	assert.Equal(t, "Error: boom\nWarning: careful\nhello\n", buf.String())
}
