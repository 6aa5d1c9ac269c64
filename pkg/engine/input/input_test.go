package input

import (
	"reflect"
	"testing"
	"time"
)

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []string
	}{
		{"letters", []byte("wd"), []string{"w", "d"}},
		{"arrow csi", []byte{0x1b, '[', 'A'}, []string{"arrow_up"}},
		{"arrow ss3", []byte{0x1b, 'O', 'D'}, []string{"arrow_left"}},
		{"shifted", []byte("W"), []string{"shift", "w"}},
		{"ctrl c", []byte{3}, []string{"escape"}},
		{"bare escape", []byte{0x1b}, []string{"escape"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeKeys(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decodeKeys(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTerminalReader_HoldWindow(t *testing.T) {
	now := time.Unix(0, 0)
	r := NewTerminalReader(nil, 100*time.Millisecond)
	r.now = func() time.Time { return now }

	r.Press("w")
	r.Press("f")
	snap := r.Snapshot()
	if !snap.Up || !snap.Flashlight {
		t.Fatalf("Snapshot() = %+v, want Up and Flashlight", snap)
	}

	now = now.Add(200 * time.Millisecond)
	if snap := r.Snapshot(); snap != (Snapshot{}) {
		t.Errorf("Snapshot() after hold window = %+v, want empty", snap)
	}
}

func TestFromHeld_Bindings(t *testing.T) {
	snap := FromHeld(HeldFromCodes([]string{"arrow_left", "shift", "unbound"}))
	want := Snapshot{Left: true, Sprint: true}
	if snap != want {
		t.Errorf("FromHeld = %+v, want %+v", snap, want)
	}
	if dx, dy := snap.Axis(); dx != -1 || dy != 0 {
		t.Errorf("Axis() = (%v,%v), want (-1,0)", dx, dy)
	}
}

func TestSnapshot_OpposingKeysCancel(t *testing.T) {
	s := Snapshot{Up: true, Down: true, Left: true}
	if dx, dy := s.Axis(); dx != -1 || dy != 0 {
		t.Errorf("Axis() = (%v,%v), want (-1,0)", dx, dy)
	}
}

func TestEdgeTrigger(t *testing.T) {
	var e EdgeTrigger
	levels := []bool{false, true, true, true, false, true}
	want := []bool{false, true, false, false, false, true}
	for i, level := range levels {
		if got := e.Update(level); got != want[i] {
			t.Errorf("frame %d: Update(%v) = %v, want %v", i, level, got, want[i])
		}
	}
}

func TestFromHeld_Empty(t *testing.T) {
	var zero Held
	if got := FromHeld(zero); got != (Snapshot{}) {
		t.Errorf("FromHeld(zero set) = %+v, want empty snapshot", got)
	}
	if got := FromHeld(HeldFromCodes(nil)); got != (Snapshot{}) {
		t.Errorf("FromHeld(no codes) = %+v, want empty snapshot", got)
	}
}

func TestBoundCodes(t *testing.T) {
	tests := []struct {
		action Action
		want   []string
	}{
		{ActionMoveUp, []string{"arrow_up", "w"}},
		{ActionQuit, []string{"escape", "q"}},
		{ActionNone, nil},
	}
	for _, tt := range tests {
		t.Run(ActionName(tt.action), func(t *testing.T) {
			if got := BoundCodes(tt.action); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BoundCodes() = %v, want %v", got, tt.want)
			}
		})
	}
}
