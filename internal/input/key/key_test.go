package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeySpace, "Space"},
		{KeyKPAdd, "KP+"},
		{KeyLShift, "LShift"},
		{Key0, "0"},
		{Key9, "9"},
		{KeyA, "A"},
		{KeyZ, "Z"},
		{Key(9999), "Key(9999)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyClassification(t *testing.T) {
	if !KeyF5.IsFunctionKey() || KeyA.IsFunctionKey() {
		t.Error("IsFunctionKey misclassified")
	}
	if !KeyLeft.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey misclassified")
	}
	if !KeyKPEnter.IsKeypadKey() || KeyEnter.IsKeypadKey() {
		t.Error("IsKeypadKey misclassified")
	}
	if !KeyRLogo.IsModifierKey() || KeySpace.IsModifierKey() {
		t.Error("IsModifierKey misclassified")
	}
	if !KeyQ.IsLetter() || Key1.IsLetter() {
		t.Error("IsLetter misclassified")
	}
	if !Key0.IsDigit() || KeyKP0.IsDigit() {
		t.Error("IsDigit misclassified")
	}
	if Key(9999).IsValid() {
		t.Error("Key(9999) should not be valid")
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name   string
		want   Key
		wantOK bool
	}{
		{"escape", KeyEscape, true},
		{"Escape", KeyEscape, true},
		{"ESC", KeyEscape, true},
		{"enter", KeyEnter, true},
		{"return", KeyEnter, true},
		{"cr", KeyEnter, true},
		{"  tab  ", KeyTab, true},
		{"pgdn", KeyPageDown, true},
		{"f10", KeyF10, true},
		{"a", KeyA, true},
		{"Z", KeyZ, true},
		{"7", Key7, true},
		{"kp+", KeyKPAdd, true},
		{"lwin", KeyLLogo, true},
		{"-", KeyMinus, true},
		{"none", KeyNone, true},
		{"unknown", KeyNone, false},
		{"", KeyNone, false},
	}

	for _, tt := range tests {
		got, ok := KeyFromName(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("KeyFromName(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestScanCodeOf(t *testing.T) {
	tests := []struct {
		key  Key
		want ScanCode
	}{
		{KeyEscape, 1},
		{Key1, 2},
		{Key0, 11},
		{KeyW, 17},
		{KeyA, 30},
		{KeyS, 31},
		{KeyD, 32},
		{KeyLShift, 42},
		{KeySpace, 57},
		{KeyF12, 88},
		{KeyUp, 0xE048},
	}

	for _, tt := range tests {
		got, ok := ScanCodeOf(tt.key)
		if !ok || got != tt.want {
			t.Errorf("ScanCodeOf(%v) = %d, %v; want %d, true", tt.key, got, ok, tt.want)
		}
		back, ok := KeyOfScanCode(got)
		if !ok || back != tt.key {
			t.Errorf("KeyOfScanCode(%d) = %v, %v; want %v, true", got, back, ok, tt.key)
		}
	}

	if _, ok := ScanCodeOf(KeyNone); ok {
		t.Error("KeyNone should have no scan code")
	}
}

func TestStateFromName(t *testing.T) {
	tests := []struct {
		name   string
		want   State
		wantOK bool
	}{
		{"pressed", Pressed, true},
		{"Press", Pressed, true},
		{"down", Pressed, true},
		{"RELEASED", Released, true},
		{"release", Released, true},
		{"up", Released, true},
		{"*", Pressed, false},
		{"held", Pressed, false},
	}

	for _, tt := range tests {
		got, ok := StateFromName(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("StateFromName(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}

	if Pressed.String() != "pressed" || Released.String() != "released" {
		t.Error("State.String() mismatch")
	}
}
