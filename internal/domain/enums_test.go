package domain

import "testing"

func TestDecodeMode_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode DecodeMode
		want bool
	}{
		{DecodeModeCount, true},
		{DecodeModeList, true},
		{"", false},
		{"COUNT", false},
		{"stream", false},
	}

	for _, tt := range tests {
		if got := tt.mode.IsValid(); got != tt.want {
			t.Errorf("DecodeMode(%q).IsValid() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
