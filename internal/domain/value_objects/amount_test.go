//go:build !integration

package valueobjects

import "testing"

func TestParseAmountAcceptsUint128Boundary(t *testing.T) {
	amount, appErr := ParseAmount("340282366920938463463374607431768211455")
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}
	if FormatAmount(amount) != "340282366920938463463374607431768211455" {
		t.Fatalf("unexpected round trip: %s", FormatAmount(amount))
	}
}

func TestParseAmountRejectsAboveUint128(t *testing.T) {
	_, appErr := ParseAmount("340282366920938463463374607431768211456")
	if appErr == nil {
		t.Fatal("expected range error, got nil")
	}
}

func TestParseAmountRejectsMalformedInput(t *testing.T) {
	testCases := []string{"", "-1", "1.5", "01a", " 10"}

	for _, raw := range testCases {
		if _, appErr := ParseAmount(raw); appErr == nil {
			t.Fatalf("expected error for %q, got nil", raw)
		}
	}
}
