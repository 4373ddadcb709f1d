package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"nardoo_storefront/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// Sandbox cardholder names select the mock outcome, as in Mercado Pago test cards.
var mockOutcomes = map[string]struct{ status, detail string }{
	"APRO": {"approved", "accredited"},
	"CONT": {"in_process", "pending_contingency"},
	"OTHE": {"rejected", "cc_rejected_other_reason"},
	"FUND": {"rejected", "cc_rejected_insufficient_amount"},
}

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return NewMockMercadoPagoGateway(), nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

// NewMockMercadoPagoGateway answers locally without calling Mercado Pago.
func NewMockMercadoPagoGateway() *MercadoPagoGateway {
	return &MercadoPagoGateway{mockMode: true, now: time.Now}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.createMockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) createMockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	log.Printf("[payment][gateway] mock create start payload_len=%d", len(requestPayload))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	outcome := mockOutcomes["APRO"]
	if o, ok := mockOutcomes[mockCardholder(resp)]; ok {
		outcome = o
	}

	ts := g.now().UTC()
	id := strconv.FormatInt(ts.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = outcome.status
	resp["status_detail"] = outcome.detail
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = ts.Format(time.RFC3339Nano)
	}
	if outcome.status == "approved" {
		resp["date_approved"] = ts.Format(time.RFC3339Nano)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	log.Printf("[payment][gateway] mock create success provider_payment_id=%s provider_status=%s", id, outcome.status)
	return id, outcome.status, b, nil
}

// mockCardholder reads payer.first_name, where sandbox flows put the test cardholder name.
func mockCardholder(req map[string]any) string {
	payer, ok := req["payer"].(map[string]any)
	if !ok {
		return ""
	}
	name, _ := payer["first_name"].(string)
	return strings.ToUpper(strings.TrimSpace(name))
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
