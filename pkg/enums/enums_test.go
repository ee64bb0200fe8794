package enums

import "testing"

func TestNormalizeOrderStatusStripsHostPrefix(t *testing.T) {
	cases := map[string]OrderStatus{
		"wc-completed":  OrderStatusCompleted,
		" processing ":  OrderStatusProcessing,
		"wc-on-hold":    OrderStatusOnHold,
		"custom-status": OrderStatus("custom-status"),
	}
	for raw, want := range cases {
		if got := NormalizeOrderStatus(raw); got != want {
			t.Fatalf("NormalizeOrderStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestAllowsPaymentStatusEdit(t *testing.T) {
	editable := []OrderStatus{OrderStatusProcessing, OrderStatusCompleted, OrderStatusRefunded}
	for _, status := range editable {
		if !status.AllowsPaymentStatusEdit() {
			t.Fatalf("expected %q to allow edits", status)
		}
	}
	locked := []OrderStatus{OrderStatusPending, OrderStatusCancelled, OrderStatusFailed, OrderStatusCheckoutDraft, OrderStatusOnHold, ""}
	for _, status := range locked {
		if status.AllowsPaymentStatusEdit() {
			t.Fatalf("expected %q to be read-only", status)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	if got, err := ParseOrderStatus("wc-refunded"); err != nil || got != OrderStatusRefunded {
		t.Fatalf("unexpected parse result %q, %v", got, err)
	}
	if _, err := ParseOrderStatus("shipped"); err == nil {
		t.Fatal("expected unknown status to fail")
	}
}

func TestPaymentStatusSets(t *testing.T) {
	if LedgerPaymentStatusPending.IsValid() {
		t.Fatal("capitalised Pending is a ledger-only value")
	}
	if !LedgerPaymentStatusPending.IsValidLedger() {
		t.Fatal("capitalised Pending must be a valid ledger value")
	}
	if _, err := ParsePaymentStatus("hacked"); err == nil {
		t.Fatal("expected unknown payment status to fail")
	}
	if got := PaymentStatuses(); len(got) != 4 || got[3] != PaymentStatusCreditNote {
		t.Fatalf("unexpected options %v", got)
	}
	if PaymentStatusCreditNote.Label() != "Credit Note" {
		t.Fatalf("unexpected label %q", PaymentStatusCreditNote.Label())
	}
}

func TestVendorAndTermOptions(t *testing.T) {
	vendors := VendorNames()
	if len(vendors) != 3 || vendors[1].Label() != "Vendor 2" {
		t.Fatalf("unexpected vendors %v", vendors)
	}
	terms := PaymentTerms()
	if len(terms) != 4 || terms[0] != PaymentTermPostPayment {
		t.Fatalf("unexpected terms %v", terms)
	}
	if _, err := ParsePaymentTerm("yearly"); err == nil {
		t.Fatal("expected unknown term to fail")
	}
	if v, err := ParseVendorName("vendor3"); err != nil || v != VendorNameVendor3 {
		t.Fatalf("unexpected vendor parse %q %v", v, err)
	}
}

func TestHookNames(t *testing.T) {
	for _, raw := range []string{"product.saved", "order.thankyou", "order.meta_saved"} {
		if _, err := ParseHookName(raw); err != nil {
			t.Fatalf("expected %q to parse: %v", raw, err)
		}
	}
	if HookName("order.paid").IsValid() {
		t.Fatal("unexpected hook accepted")
	}
}
