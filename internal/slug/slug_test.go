package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"OTC Pain Relievers", "otc-pain-relievers"},
		{"Cough and Cold Medicine", "cough-and-cold-medicine"},
		{"Vitamins & Supplements", "vitamins-supplements"},
		{"  Baby Food  ", "baby-food"},
		{"Eye   Drops", "eye-drops"},
		{"What's a Tamper-Evident Seal?", "whats-a-tamper-evident-seal"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Generate(tt.in); got != tt.want {
			t.Errorf("Generate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
