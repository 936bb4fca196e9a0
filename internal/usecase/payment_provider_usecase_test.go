package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"dokan_payments/internal/domain/entities"
	mock_interfaces "dokan_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testProviderConfig() ProviderConfig {
	return ProviderConfig{
		SuccessURL:      "https://pay.example.com/store/sslcommerz/success",
		FailURL:         "https://pay.example.com/store/sslcommerz/fail",
		CancelURL:       "https://pay.example.com/store/sslcommerz/cancel",
		IPNURL:          "https://pay.example.com/store/sslcommerz/ipn",
		DefaultCurrency: "BDT",
		ProductName:     "Cart Checkout",
		ProductCategory: "General",
		SessionTTL:      time.Hour,
	}
}

func TestPaymentProviderUseCase_InitiatePayment(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentProviderUseCase(nil, nil, nil, testProviderConfig())
		_, err := uc.InitiatePayment(context.Background(), "100", "BDT", PaymentContext{})
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("invalid amount rejected before gateway call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewPaymentProviderUseCase(gateway, sessions, nil, testProviderConfig())

		_, err := uc.InitiatePayment(context.Background(), "abc", "BDT", PaymentContext{IdempotencyKey: "t1"})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("guest checkout fills placeholder customer fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		records := mock_interfaces.NewMockITransactionRecordRepository(ctrl)
		uc := NewPaymentProviderUseCase(gateway, sessions, records, testProviderConfig())

		var payload map[string]string
		gateway.EXPECT().Init(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p map[string]string) (entities.GatewayInitResult, error) {
				payload = p
				return entities.GatewayInitResult{
					GatewayURL: "https://sandbox.sslcommerz.com/EasyCheckOut/abc",
					SessionKey: "SK1",
					Raw:        json.RawMessage(`{"status":"SUCCESS"}`),
				}, nil
			})
		sessions.EXPECT().Set(gomock.Any(), "sslc:sess:t1", gomock.Any(), time.Hour)
		sessions.EXPECT().Set(gomock.Any(), "sslc:cart:cart-1", []byte("t1"), time.Hour)
		records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.TransactionRecord{}, nil)

		result, err := uc.InitiatePayment(context.Background(), 150.5, "", PaymentContext{
			IdempotencyKey: "t1",
			CartID:         "cart-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ID != "t1" || result.Status != entities.SessionStatusPending {
			t.Fatalf("unexpected result %+v", result)
		}
		if result.GatewayURL == "" {
			t.Fatalf("expected gateway url")
		}

		if payload["total_amount"] != "150.50" {
			t.Fatalf("expected normalized amount 150.50, got %q", payload["total_amount"])
		}
		if payload["currency"] != "BDT" {
			t.Fatalf("expected default currency, got %q", payload["currency"])
		}
		if payload["cus_name"] != "Customer" || payload["cus_phone"] != "01700000000" || payload["cus_email"] != "customer@example.com" {
			t.Fatalf("expected placeholder customer fields, got name=%q phone=%q email=%q", payload["cus_name"], payload["cus_phone"], payload["cus_email"])
		}
		if !strings.Contains(payload["success_url"], "tran_id=t1") || !strings.Contains(payload["success_url"], "cart_id=cart-1") {
			t.Fatalf("expected identifiers on success_url, got %q", payload["success_url"])
		}
		if !strings.Contains(payload["ipn_listener_url"], "tran_id=t1") {
			t.Fatalf("expected identifiers on ipn_listener_url, got %q", payload["ipn_listener_url"])
		}
	})

	t.Run("cart snapshot wins over context and defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewPaymentProviderUseCase(gateway, sessions, nil, testProviderConfig())

		var payload map[string]string
		gateway.EXPECT().Init(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p map[string]string) (entities.GatewayInitResult, error) {
				payload = p
				return entities.GatewayInitResult{GatewayURL: "https://pay/redir"}, nil
			})
		sessions.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

		_, err := uc.InitiatePayment(context.Background(), "200", "bdt", PaymentContext{
			IdempotencyKey: "t2",
			Email:          "stale@example.com",
			Cart: &entities.CartSnapshot{
				ID:    "cart-2",
				Email: "a@b.com",
				ShippingAddress: &entities.Address{
					FirstName:  "Rahim",
					LastName:   "Uddin",
					Phone:      "01712345678",
					Address1:   "House 1, Road 2",
					City:       "Chattogram",
					PostalCode: "4000",
					Country:    "Bangladesh",
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload["cus_name"] != "Rahim Uddin" || payload["cus_phone"] != "01712345678" || payload["cus_email"] != "a@b.com" {
			t.Fatalf("expected cart snapshot fields, got name=%q phone=%q email=%q", payload["cus_name"], payload["cus_phone"], payload["cus_email"])
		}
		if payload["cus_city"] != "Chattogram" || payload["cus_postcode"] != "4000" {
			t.Fatalf("expected cart address fields, got city=%q postcode=%q", payload["cus_city"], payload["cus_postcode"])
		}
	})

	t.Run("missing redirect url fails without caching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		records := mock_interfaces.NewMockITransactionRecordRepository(ctrl)
		uc := NewPaymentProviderUseCase(gateway, sessions, records, testProviderConfig())

		gateway.EXPECT().Init(gomock.Any(), gomock.Any()).Return(entities.GatewayInitResult{
			Raw: json.RawMessage(`{"status":"FAILED","failedreason":"store deactivated"}`),
		}, nil)
		// No Set, no Create expectations: the session must not be cached.

		_, err := uc.InitiatePayment(context.Background(), "100", "BDT", PaymentContext{IdempotencyKey: "t3"})
		if !errors.Is(err, ErrMissingGatewayURL) {
			t.Fatalf("expected ErrMissingGatewayURL, got %v", err)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewPaymentProviderUseCase(gateway, sessions, nil, testProviderConfig())

		boom := errors.New("network down")
		gateway.EXPECT().Init(gomock.Any(), gomock.Any()).Return(entities.GatewayInitResult{}, boom)

		_, err := uc.InitiatePayment(context.Background(), "100", "BDT", PaymentContext{IdempotencyKey: "t4"})
		if !errors.Is(err, boom) {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("record create failure does not fail initiation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		records := mock_interfaces.NewMockITransactionRecordRepository(ctrl)
		uc := NewPaymentProviderUseCase(gateway, sessions, records, testProviderConfig())

		gateway.EXPECT().Init(gomock.Any(), gomock.Any()).Return(entities.GatewayInitResult{GatewayURL: "https://pay/redir"}, nil)
		sessions.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
		records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.TransactionRecord{}, errors.New("ddb down"))

		_, err := uc.InitiatePayment(context.Background(), "100", "BDT", PaymentContext{IdempotencyKey: "t5"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentProviderUseCase_AuthorizePayment(t *testing.T) {
	t.Run("missing session id", func(t *testing.T) {
		uc := NewPaymentProviderUseCase(nil, nil, nil, testProviderConfig())
		_, _, err := uc.AuthorizePayment(context.Background(), entities.PaymentSession{})
		if !errors.Is(err, ErrMissingSessionTranID) {
			t.Fatalf("expected ErrMissingSessionTranID, got %v", err)
		}
	})

	t.Run("authorizes on VALID and hydrates from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		records := mock_interfaces.NewMockITransactionRecordRepository(ctrl)
		uc := NewPaymentProviderUseCase(gateway, sessions, records, testProviderConfig())

		cached := entities.PaymentSession{
			SessionID:      "t1",
			CartID:         "cart-1",
			Amount:         "100.00",
			CurrencyCode:   "BDT",
			Status:         entities.SessionStatusPending,
			GatewayPayload: map[string]string{"tran_id": "t1"},
			CreatedAt:      time.Now().UTC().Add(-time.Minute),
		}
		raw, _ := json.Marshal(cached)
		sessions.EXPECT().Get(gomock.Any(), "sslc:sess:t1").Return(raw, true)

		validation := json.RawMessage(`{"status":"VALID","bank_tran_id":"B1"}`)
		gateway.EXPECT().QueryByTranID(gomock.Any(), "t1").Return(entities.GatewayQueryResult{
			Status: "VALID",
			Raw:    validation,
		}, nil)
		sessions.EXPECT().Set(gomock.Any(), "sslc:sess:t1", gomock.Any(), time.Hour)
		records.EXPECT().UpdateStatus(gomock.Any(), "t1", entities.SessionStatusAuthorized, validation).Return(entities.TransactionRecord{}, nil)

		status, session, err := uc.AuthorizePayment(context.Background(), entities.PaymentSession{SessionID: "t1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.SessionStatusAuthorized {
			t.Fatalf("expected authorized, got %s", status)
		}
		if session.CartID != "cart-1" {
			t.Fatalf("expected cart id hydrated from cache, got %q", session.CartID)
		}
		if session.BankTranID() != "B1" {
			t.Fatalf("expected bank tran id from validation, got %q", session.BankTranID())
		}
	})

	t.Run("cancels on FAILED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewPaymentProviderUseCase(gateway, sessions, nil, testProviderConfig())

		sessions.EXPECT().Get(gomock.Any(), "sslc:sess:t2").Return(nil, false)
		gateway.EXPECT().QueryByTranID(gomock.Any(), "t2").Return(entities.GatewayQueryResult{Status: "FAILED"}, nil)
		sessions.EXPECT().Set(gomock.Any(), "sslc:sess:t2", gomock.Any(), time.Hour)

		status, _, err := uc.AuthorizePayment(context.Background(), entities.PaymentSession{SessionID: "t2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.SessionStatusCanceled {
			t.Fatalf("expected canceled, got %s", status)
		}
	})

	t.Run("repeated calls yield the same status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewPaymentProviderUseCase(gateway, sessions, nil, testProviderConfig())

		sessions.EXPECT().Get(gomock.Any(), "sslc:sess:t4").Return(nil, false).Times(2)
		gateway.EXPECT().QueryByTranID(gomock.Any(), "t4").Return(entities.GatewayQueryResult{Status: "VALID"}, nil).Times(2)
		sessions.EXPECT().Set(gomock.Any(), "sslc:sess:t4", gomock.Any(), time.Hour).Times(2)

		session := entities.PaymentSession{SessionID: "t4"}
		first, _, err := uc.AuthorizePayment(context.Background(), session)
		if err != nil {
			t.Fatalf("unexpected error on first call: %v", err)
		}
		second, _, err := uc.AuthorizePayment(context.Background(), session)
		if err != nil {
			t.Fatalf("unexpected error on second call: %v", err)
		}
		if first != entities.SessionStatusAuthorized || second != first {
			t.Fatalf("expected authorized on both calls, got %s then %s", first, second)
		}
	})

	t.Run("query failure leaves session untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewPaymentProviderUseCase(gateway, sessions, nil, testProviderConfig())

		sessions.EXPECT().Get(gomock.Any(), "sslc:sess:t3").Return(nil, false)
		boom := errors.New("gateway down")
		gateway.EXPECT().QueryByTranID(gomock.Any(), "t3").Return(entities.GatewayQueryResult{}, boom)

		_, _, err := uc.AuthorizePayment(context.Background(), entities.PaymentSession{SessionID: "t3"})
		if !errors.Is(err, boom) {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})
}

func TestPaymentProviderUseCase_GetPaymentStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
	uc := NewPaymentProviderUseCase(gateway, nil, nil, testProviderConfig())

	gateway.EXPECT().QueryByTranID(gomock.Any(), "t1").Return(entities.GatewayQueryResult{Status: "PAID"}, nil)
	status, err := uc.GetPaymentStatus(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != entities.SessionStatusAuthorized {
		t.Fatalf("expected authorized, got %s", status)
	}

	if _, err := uc.GetPaymentStatus(context.Background(), " "); !errors.Is(err, ErrMissingSessionTranID) {
		t.Fatalf("expected ErrMissingSessionTranID, got %v", err)
	}
}

func TestPaymentProviderUseCase_RefundPayment(t *testing.T) {
	t.Run("no bank tran id is a logged no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		uc := NewPaymentProviderUseCase(gateway, nil, nil, testProviderConfig())

		session := entities.PaymentSession{SessionID: "t1"}
		out, err := uc.RefundPayment(context.Background(), session, "50.00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SessionID != "t1" {
			t.Fatalf("expected session passed through")
		}
	})

	t.Run("invalid amount is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		uc := NewPaymentProviderUseCase(gateway, nil, nil, testProviderConfig())

		session := entities.PaymentSession{
			SessionID:      "t1",
			LastValidation: json.RawMessage(`{"bank_tran_id":"B1"}`),
		}
		if _, err := uc.RefundPayment(context.Background(), session, "abc"); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("gateway failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		uc := NewPaymentProviderUseCase(gateway, nil, nil, testProviderConfig())

		session := entities.PaymentSession{
			SessionID:      "t1",
			LastValidation: json.RawMessage(`{"bank_tran_id":"B1"}`),
		}
		gateway.EXPECT().InitiateRefund(gomock.Any(), "B1", "50.00", gomock.Any()).Return(nil, errors.New("gateway down"))

		if _, err := uc.RefundPayment(context.Background(), session, "50.00"); err != nil {
			t.Fatalf("expected refund failure to be swallowed, got %v", err)
		}
	})

	t.Run("triggers refund with normalized amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIGatewayClient(ctrl)
		uc := NewPaymentProviderUseCase(gateway, nil, nil, testProviderConfig())

		session := entities.PaymentSession{
			SessionID:      "t1",
			LastValidation: json.RawMessage(`{"element":[{"bank_tran_id":"B2"}]}`),
		}
		gateway.EXPECT().InitiateRefund(gomock.Any(), "B2", "75.50", gomock.Any()).Return(json.RawMessage(`{"status":"success"}`), nil)

		if _, err := uc.RefundPayment(context.Background(), session, 75.5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentProviderUseCase_Passthroughs(t *testing.T) {
	uc := NewPaymentProviderUseCase(nil, nil, nil, testProviderConfig())
	session := entities.PaymentSession{SessionID: "t1", Status: entities.SessionStatusAuthorized}

	if out := uc.CapturePayment(session); out.SessionID != "t1" || out.Status != entities.SessionStatusAuthorized {
		t.Fatalf("capture changed the session: %+v", out)
	}
	if out := uc.CancelPayment(session); out.SessionID != "t1" {
		t.Fatalf("cancel changed the session: %+v", out)
	}
	if out := uc.DeletePayment(session); out.SessionID != "t1" {
		t.Fatalf("delete changed the session: %+v", out)
	}
	if out := uc.RetrievePayment(session); out.Status != entities.SessionStatusAuthorized {
		t.Fatalf("retrieve changed the session: %+v", out)
	}
}

func TestPaymentProviderUseCase_WebhookActionAndData(t *testing.T) {
	uc := NewPaymentProviderUseCase(nil, nil, nil, testProviderConfig())

	t.Run("valid status maps to authorized", func(t *testing.T) {
		res := uc.WebhookActionAndData(map[string]interface{}{
			"tran_id": "t1",
			"status":  "VALID",
			"amount":  "100.00",
		})
		if res.Action != entities.WebhookActionAuthorized {
			t.Fatalf("expected authorized, got %s", res.Action)
		}
		if res.SessionID != "t1" || res.Amount != "100.00" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("failed status maps to canceled", func(t *testing.T) {
		res := uc.WebhookActionAndData(map[string]interface{}{
			"session_id": "t2",
			"status":     "FAILED",
		})
		if res.Action != entities.WebhookActionCanceled || res.SessionID != "t2" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("unknown status is not supported", func(t *testing.T) {
		res := uc.WebhookActionAndData(map[string]interface{}{
			"tran_id": "t3",
			"status":  "PROCESSING",
		})
		if res.Action != entities.WebhookActionNotSupported {
			t.Fatalf("expected not supported, got %s", res.Action)
		}
	})

	t.Run("missing identifier is not supported", func(t *testing.T) {
		res := uc.WebhookActionAndData(map[string]interface{}{"status": "VALID"})
		if res.Action != entities.WebhookActionNotSupported {
			t.Fatalf("expected not supported, got %s", res.Action)
		}
	})
}

func TestPaymentProviderUseCase_ResolveSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sessions := mock_interfaces.NewMockISessionStore(ctrl)
	uc := NewPaymentProviderUseCase(nil, sessions, nil, testProviderConfig())

	t.Run("miss", func(t *testing.T) {
		sessions.EXPECT().Get(gomock.Any(), "sslc:sess:t1").Return(nil, false)
		if _, ok := uc.ResolveSession(context.Background(), "t1"); ok {
			t.Fatalf("expected miss")
		}
	})

	t.Run("corrupt payload is a miss", func(t *testing.T) {
		sessions.EXPECT().Get(gomock.Any(), "sslc:sess:t2").Return([]byte("{"), true)
		if _, ok := uc.ResolveSession(context.Background(), "t2"); ok {
			t.Fatalf("expected miss on corrupt payload")
		}
	})

	t.Run("hit", func(t *testing.T) {
		raw, _ := json.Marshal(entities.PaymentSession{SessionID: "t3", CartID: "cart-3"})
		sessions.EXPECT().Get(gomock.Any(), "sslc:sess:t3").Return(raw, true)
		session, ok := uc.ResolveSession(context.Background(), "t3")
		if !ok || session.CartID != "cart-3" {
			t.Fatalf("expected cached session, got %+v ok=%t", session, ok)
		}
	})
}

func TestNormalizeAmount(t *testing.T) {
	cases := []struct {
		name    string
		in      interface{}
		want    string
		wantErr bool
	}{
		{"string", "100", "100.00", false},
		{"string with cents", "99.9", "99.90", false},
		{"string padded", "  10.25  ", "10.25", false},
		{"float64", 150.5, "150.50", false},
		{"int", 42, "42.00", false},
		{"int64", int64(7), "7.00", false},
		{"json number", json.Number("12.34"), "12.34", false},
		{"nil", nil, "", true},
		{"garbage", "abc", "", true},
		{"zero", "0", "", true},
		{"negative", -5, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeAmount(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("expected ErrInvalidAmount, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNewProviderConfigFromEnv(t *testing.T) {
	t.Run("missing callback urls", func(t *testing.T) {
		t.Setenv("SSLCOMMERZ_SUCCESS_URL", "")
		t.Setenv("SSLCOMMERZ_FAIL_URL", "")
		t.Setenv("SSLCOMMERZ_CANCEL_URL", "")
		if _, err := NewProviderConfigFromEnv(); !errors.Is(err, ErrMissingCallbackURLs) {
			t.Fatalf("expected ErrMissingCallbackURLs, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("SSLCOMMERZ_SUCCESS_URL", "https://x/success")
		t.Setenv("SSLCOMMERZ_FAIL_URL", "https://x/fail")
		t.Setenv("SSLCOMMERZ_CANCEL_URL", "https://x/cancel")
		t.Setenv("SSLCOMMERZ_CURRENCY", "")
		t.Setenv("SESSION_TTL_SECONDS", "")
		cfg, err := NewProviderConfigFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DefaultCurrency != "BDT" {
			t.Fatalf("expected BDT default, got %q", cfg.DefaultCurrency)
		}
		if cfg.SessionTTL != time.Hour {
			t.Fatalf("expected 1h ttl, got %v", cfg.SessionTTL)
		}
	})

	t.Run("ttl override", func(t *testing.T) {
		t.Setenv("SSLCOMMERZ_SUCCESS_URL", "https://x/success")
		t.Setenv("SSLCOMMERZ_FAIL_URL", "https://x/fail")
		t.Setenv("SSLCOMMERZ_CANCEL_URL", "https://x/cancel")
		t.Setenv("SESSION_TTL_SECONDS", "120")
		cfg, err := NewProviderConfigFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SessionTTL != 2*time.Minute {
			t.Fatalf("expected 2m ttl, got %v", cfg.SessionTTL)
		}
	})
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "unset uses default", value: "", want: 1500},
		{name: "positive override", value: "250", want: 250},
		{name: "zero disables the delay", value: "0", want: 0},
		{name: "negative uses default", value: "-5", want: 1500},
		{name: "garbage uses default", value: "abc", want: 1500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COMPLETION_SETTLE_MS", tt.value)
			if got := getenvInt("COMPLETION_SETTLE_MS", 1500); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
