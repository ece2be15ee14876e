package budget

import "testing"

func TestIsComplex(t *testing.T) {
	tests := []struct {
		text    string
		complex bool
	}{
		{"Analyze this log output for errors", true},
		{"Please COMPARE these two approaches", true},
		{"walk me through it step by step", true},
		{"Give me a comprehensive overview", true},
		{"translate this paragraph to French", true},
		{"what's the weather like", false},
		{"fix the typo in line 3", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsComplex(tt.text); got != tt.complex {
			t.Errorf("IsComplex(%q) = %v, want %v", tt.text, got, tt.complex)
		}
	}
}

func TestOperationString(t *testing.T) {
	tests := []struct {
		op   Operation
		name string
	}{
		{OpSend, "send"},
		{OpEdit, "edit"},
		{OpReload, "reload"},
		{OpAttachFile, "attach-file"},
		{OpSystemInstruction, "system-instruction"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.name {
			t.Errorf("Operation(%d).String() = %q, want %q", tt.op, got, tt.name)
		}
	}
}
