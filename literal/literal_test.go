package literal

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseIntText(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
		want Value
	}{
		{"0b1001_0101", S32, NewInt(S32, 0x95)},
		{"0x01234_abcdef_ABCDEF", U64, NewUint(U64, 0x01234abcdefABCDEF)},
		{"0o17", U8, NewUint(U8, 15)},
		{"-128", S8, NewInt(S8, -128)},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			neg, mag, err := ParseIntText(test.text)
			if err != nil {
				t.Fatalf("ParseIntText(%q): %v", test.text, err)
			}
			got, err := AssignInt(test.kind, neg, mag)
			if err != nil {
				t.Fatalf("AssignInt: %v", err)
			}
			if diff := cmp.Diff(test.want, got, cmp.AllowUnexported(Value{})); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestAssignIntOverflow(t *testing.T) {
	_, mag, err := ParseIntText("256")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := AssignInt(U8, false, mag); err == nil {
		t.Fatalf("expected overflow error assigning 256 to U8")
	}
	if _, err := AssignInt(U8, false, big.NewInt(255)); err != nil {
		t.Fatalf("255 should fit in U8: %v", err)
	}
}

func TestParseCharText(t *testing.T) {
	tests := []struct {
		text string
		want rune
	}{
		{`\u{0001}`, 0x0001},
		{`\n`, '\n'},
		{`\x41`, 'A'},
		{`a`, 'a'},
	}
	for _, test := range tests {
		got, err := ParseCharText(test.text)
		if err != nil {
			t.Fatalf("ParseCharText(%q): %v", test.text, err)
		}
		if got.Rune() != test.want {
			t.Errorf("ParseCharText(%q) = %q, want %q", test.text, got.Rune(), test.want)
		}
	}
}

func TestParseCharTextRejectsSurrogate(t *testing.T) {
	if _, err := ParseCharText(`\u{D800}`); err == nil {
		t.Fatalf("expected surrogate code point to be rejected")
	}
}

func TestParseStringText(t *testing.T) {
	got, err := ParseStringText(`hi\tthere\n`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Str() != "hi\tthere\n" {
		t.Errorf("got %q", got.Str())
	}
}
