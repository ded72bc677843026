package memory

import "testing"

func TestDirection(t *testing.T) {
	tests := []struct {
		d      Direction
		str    string
		active bool
	}{
		{None, "None", false},
		{Read, "Read", true},
		{Write, "Write", true},
		{Direction(7), "Direction(7)", false},
	}
	for _, test := range tests {
		if got, want := test.d.String(), test.str; got != want {
			t.Errorf("Bad String() for %d. Got %q and want %q", int(test.d), got, want)
		}
		a := Access{Direction: test.d, Data: "AB", Addr: "1234"}
		if got, want := a.Active(), test.active; got != want {
			t.Errorf("%s: Active() got %t and want %t", test.str, got, want)
		}
	}
}
