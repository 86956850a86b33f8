package models

import "testing"

func TestOrderStatus_CanAdvance(t *testing.T) {
	testCases := []struct {
		Name    string
		From    OrderStatus
		To      OrderStatus
		Allowed bool
	}{
		{"REGISTERED -> PROCESSING", OrderStatusRegistered, OrderStatusProcessing, true},
		{"REGISTERED -> INVALID", OrderStatusRegistered, OrderStatusInvalid, true},
		{"REGISTERED -> PROCESSED", OrderStatusRegistered, OrderStatusProcessed, false},
		{"PROCESSING -> PROCESSED", OrderStatusProcessing, OrderStatusProcessed, true},
		{"PROCESSING -> INVALID", OrderStatusProcessing, OrderStatusInvalid, true},
		{"PROCESSING -> REGISTERED", OrderStatusProcessing, OrderStatusRegistered, false},
		{"PROCESSED -> PROCESSING", OrderStatusProcessed, OrderStatusProcessing, false},
		{"PROCESSED -> INVALID", OrderStatusProcessed, OrderStatusInvalid, false},
		{"INVALID -> PROCESSING", OrderStatusInvalid, OrderStatusProcessing, false},
		{"INVALID -> PROCESSED", OrderStatusInvalid, OrderStatusProcessed, false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := tc.From.CanAdvance(tc.To); got != tc.Allowed {
				t.Errorf("CanAdvance(%s -> %s) = %v, want %v", tc.From, tc.To, got, tc.Allowed)
			}
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	terminal := map[OrderStatus]bool{
		OrderStatusRegistered: false,
		OrderStatusProcessing: false,
		OrderStatusProcessed:  true,
		OrderStatusInvalid:    true,
	}

	for status, want := range terminal {
		if got := status.Terminal(); got != want {
			t.Errorf("Terminal(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	testCases := []struct {
		Value   string
		WantErr bool
	}{
		{"REGISTERED", false},
		{"PROCESSING", false},
		{"PROCESSED", false},
		{"INVALID", false},
		{"NEW", true},
		{"processed", true},
		{"", true},
	}

	for _, tc := range testCases {
		t.Run(tc.Value, func(t *testing.T) {
			status, err := ParseOrderStatus(tc.Value)
			if tc.WantErr && err == nil {
				t.Errorf("ParseOrderStatus(%q) expected error, got status %q", tc.Value, status)
			}
			if !tc.WantErr && err != nil {
				t.Errorf("ParseOrderStatus(%q) unexpected error: %v", tc.Value, err)
			}
		})
	}
}
