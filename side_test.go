package custody

import "testing"

func TestParseSide(t *testing.T) {
	for _, value := range []string{"BUY", "SELL"} {
		side, err := ParseSide(value)
		if err != nil {
			t.Fatal(err)
		}

		if side.String() != value {
			t.Errorf(
				"unexpected side\n"+
					"expected: [%v]\n"+
					"actual:   [%v]",
				value,
				side.String(),
			)
		}
	}

	if _, err := ParseSide("HOLD"); err == nil {
		t.Errorf("expected error for unknown side")
	}
}
