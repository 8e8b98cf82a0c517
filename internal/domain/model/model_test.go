package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"placed", OrderStatusPlaced, "placed"},
		{"preparing", OrderStatusPreparing, "preparing"},
		{"ready", OrderStatusReady, "ready"},
		{"completed", OrderStatusCompleted, "completed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if !tc.got.Valid() {
				t.Fatalf("expected %s to be valid", tc.got)
			}
		})
	}

	if OrderStatus("cancelled").Valid() {
		t.Fatal("cancelled must not be a lifecycle status")
	}
}

func TestOrderStatusCanAdvanceTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusPlaced, true},
		{OrderStatusPlaced, OrderStatusPreparing, true},
		{OrderStatusPlaced, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusCompleted, true},
		{OrderStatusPlaced, OrderStatusPlaced, false},
		{OrderStatusReady, OrderStatusPlaced, false},
		{OrderStatusCompleted, OrderStatusReady, false},
		{OrderStatusPlaced, OrderStatus("cancelled"), false},
		{OrderStatus("unknown"), OrderStatusReady, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanAdvanceTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestParseUpdatableStatus(t *testing.T) {
	for _, raw := range []string{"placed", "preparing", "ready", "completed"} {
		status, ok := ParseUpdatableStatus(raw)
		if !ok || string(status) != raw {
			t.Fatalf("expected %q to parse, got %q ok=%v", raw, status, ok)
		}
	}
	for _, raw := range []string{"", "pending", "cancelled", "READY"} {
		if _, ok := ParseUpdatableStatus(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestPaymentMethodValid(t *testing.T) {
	if !PaymentMethodCash.Valid() || !PaymentMethodCreditCard.Valid() {
		t.Fatal("expected known payment methods to be valid")
	}
	if PaymentMethod("bitcoin").Valid() || PaymentMethod("").Valid() {
		t.Fatal("expected unknown payment methods to be invalid")
	}
}

func TestTransactionIDFor(t *testing.T) {
	if got := TransactionIDFor("123456"); got != "TXN_123456" {
		t.Fatalf("unexpected transaction id %q", got)
	}
}

func TestSelectionHasPaymentMethod(t *testing.T) {
	var nilSel *Selection
	if nilSel.HasPaymentMethod() {
		t.Fatal("nil selection has no payment method")
	}
	sel := &Selection{}
	if sel.HasPaymentMethod() {
		t.Fatal("empty selection has no payment method")
	}
	sel.PaymentMethod = PaymentMethodCash
	if !sel.HasPaymentMethod() {
		t.Fatal("expected payment method to be set")
	}
}
