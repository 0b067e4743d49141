package sim

import "testing"

func TestClass_String(t *testing.T) {
	tests := []struct {
		class Class
		want  string
	}{
		{Gold, "Gold"},
		{Silver, "Silver"},
		{Bronze, "Bronze"},
		{Class(7), "Class(7)"},
	}
	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("Class(%d).String() = %q, want %q", int(tt.class), got, tt.want)
		}
	}
}

func TestParseClass_RoundTrip(t *testing.T) {
	for _, cl := range Classes {
		got, err := ParseClass(cl.String())
		if err != nil {
			t.Fatalf("ParseClass(%q): %v", cl.String(), err)
		}
		if got != cl {
			t.Errorf("ParseClass(%q) = %v, want %v", cl.String(), got, cl)
		}
	}
}

func TestParseClass_Unknown(t *testing.T) {
	if _, err := ParseClass("platinum"); err == nil {
		t.Error("expected error for unknown class name")
	}
}

func TestPacket_String(t *testing.T) {
	p := &Packet{ID: 3, Class: Gold, ArrivalTime: 3, Size: 2}
	if got := p.String(); got != "[Gold#3]" {
		t.Errorf("String() = %q, want %q", got, "[Gold#3]")
	}
}
