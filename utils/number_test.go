package utils_test

import (
	"math"
	"testing"

	"github.com/peiplay/console-core/utils"
)

func TestSafeNumberDefendsMalformedInput(t *testing.T) {
	if got := utils.SafeNumber(nil); got != 0 {
		t.Fatalf("SafeNumber(nil) = %v, want 0", got)
	}
	if got := utils.SafeNumber(utils.NewFloat(math.NaN())); got != 0 {
		t.Fatalf("SafeNumber(NaN) = %v, want 0", got)
	}
	if got := utils.SafeNumber(utils.NewFloat(math.Inf(-1))); got != 0 {
		t.Fatalf("SafeNumber(-Inf) = %v, want 0", got)
	}
	if got := utils.SafeNumber(utils.NewFloat(12.5)); got != 12.5 {
		t.Fatalf("SafeNumber(12.5) = %v, want 12.5", got)
	}
}

func TestToCentsRoundsThroughDecimal(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{19.99, 1999},
		{0.1 + 0.2, 30}, // binary float noise must not leak into cents
		{-5.05, -505},
		{0, 0},
		{math.NaN(), 0},
	}
	for _, tc := range cases {
		if got := utils.ToCents(tc.in); got != tc.want {
			t.Fatalf("ToCents(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCentsToAmountRoundTrip(t *testing.T) {
	if got := utils.CentsToAmount(3334); got != 33.34 {
		t.Fatalf("CentsToAmount(3334) = %v, want 33.34", got)
	}
	if got := utils.CentsToAmount(-505); got != -5.05 {
		t.Fatalf("CentsToAmount(-505) = %v, want -5.05", got)
	}
	for _, cents := range []int64{0, 1, 99, 12345, -12345} {
		if got := utils.ToCents(utils.CentsToAmount(cents)); got != cents {
			t.Fatalf("round trip of %d cents = %d", cents, got)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := utils.Round2(0.30000000000000004); got != 0.3 {
		t.Fatalf("Round2 float noise = %v, want 0.3", got)
	}
	if got := utils.Round2(80.0 - 100.0); got != -20 {
		t.Fatalf("Round2(-20) = %v, want -20", got)
	}
	if got := utils.Round2(math.Inf(1)); got != 0 {
		t.Fatalf("Round2(+Inf) = %v, want 0", got)
	}
}

func TestParseDecimal(t *testing.T) {
	dec, err := utils.ParseDecimal(" 12.34 ")
	if err != nil {
		t.Fatalf("ParseDecimal: %v", err)
	}
	if dec.String() != "12.34" {
		t.Fatalf("ParseDecimal = %s, want 12.34", dec.String())
	}
	if _, err := utils.ParseDecimal(""); err == nil {
		t.Fatalf("ParseDecimal accepted empty string")
	}
	if _, err := utils.ParseDecimal("abc"); err == nil {
		t.Fatalf("ParseDecimal accepted garbage")
	}
}

func TestDereferencePtr(t *testing.T) {
	if got := utils.DereferencePtr(utils.NewString("x")); got != "x" {
		t.Fatalf("DereferencePtr = %q, want x", got)
	}
	var nilInt *int
	if got := utils.DereferencePtr(nilInt, 7); got != 7 {
		t.Fatalf("DereferencePtr default = %d, want 7", got)
	}
	var nilBool *bool
	if got := utils.DereferencePtr(nilBool); got != false {
		t.Fatalf("DereferencePtr zero value = %v, want false", got)
	}
}

func TestUniqueSlice(t *testing.T) {
	got := utils.UniqueSlice([]string{"a", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("UniqueSlice = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("UniqueSlice = %v, want %v", got, want)
		}
	}
}
