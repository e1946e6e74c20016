package centrapay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequest_Values(t *testing.T) {
	req := Request{MerchantID: "m1", Amount: "10.00", Asset: "USD"}
	assert.Equal(t, "amount=10.00&asset=USD&merchantId=m1", req.Values().Encode())

	req.ClientID = "c1"
	assert.Equal(t, "amount=10.00&asset=USD&clientId=c1&merchantId=m1", req.Values().Encode())
}

func TestRequest_Values_UnsetMerchant(t *testing.T) {
	req := Request{Amount: "1", Asset: "NZD"}
	values := req.Values()
	_, ok := values[FieldMerchantID]
	assert.False(t, ok)
}

func TestRequest_Values_EmptyAmountStillSent(t *testing.T) {
	req := Request{MerchantID: "m1", Amount: "", Asset: ""}
	assert.Equal(t, "amount=&asset=&merchantId=m1", req.Values().Encode())
}

func TestPayRequest_Values_EmptyFieldsStillSent(t *testing.T) {
	pay := PayRequest{RequestID: "", Ledger: "", Authorization: ""}
	assert.Equal(t, "authorization=&ledger=&requestId=", pay.Values().Encode())
}

func TestPayRequest_Values(t *testing.T) {
	pay := PayRequest{RequestID: "r1", Ledger: "centrapay.nzd.main", Authorization: "tok"}
	assert.Equal(t, "authorization=tok&ledger=centrapay.nzd.main&requestId=r1", pay.Values().Encode())
}

func TestPayURL(t *testing.T) {
	assert.Equal(t, "http://app.centrapay.com/pay/abc", PayURL("http://app.centrapay.com/pay", "abc"))
	assert.Equal(t, "http://app.centrapay.com/pay/abc", PayURL("http://app.centrapay.com/pay/", "abc"))
}

func TestExtractRequestID(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		id     string
		wantOK bool
	}{
		{"string id", `{"requestId":"WRhAxxWpTKb5U7pXyxQjjY"}`, "WRhAxxWpTKb5U7pXyxQjjY", true},
		{"numeric id verbatim", `{"requestId":12345}`, "12345", true},
		{"missing", `{"status":"new"}`, "", false},
		{"null", `{"requestId":null}`, "", false},
		{"empty string", `{"requestId":""}`, "", false},
		{"not json", `not found`, "", false},
		{"array body", `[1,2]`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := extractRequestID([]byte(tt.body))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestResult_JSON(t *testing.T) {
	valid := &Result{Body: []byte(`{"a":1}`)}
	assert.JSONEq(t, `{"a":1}`, string(valid.JSON()))

	plain := &Result{Body: []byte("not found")}
	assert.Equal(t, `"not found"`, string(plain.JSON()))
}
