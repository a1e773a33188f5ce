// internal/gcode/gcode_test.go
package gcode

import "testing"

func TestModal_TotalOverAllGroupsAndValues(t *testing.T) {
	for g := 0; g < ModalGroups; g++ {
		for v := 0; v <= 255; v++ {
			if s := Modal(g, byte(v)); s == "" {
				t.Fatalf("Modal(%d, %d) returned empty string", g, v)
			}
		}
	}
}

func TestModal_KnownCodes(t *testing.T) {
	cases := []struct {
		group int
		value byte
		want  string
	}{
		{0, 0, "G00"},
		{0, 24, "G34"},
		{0, 9, Unknown},
		{1, 4, "G19"},
		{1, 8, "G18"},
		{1, 1, Unknown},
		{5, 1, "G21(G71)"},
		{8, 10, "G73"},
		{13, 0, "G54(G54.1)"},
		{20, 1, "G12.1(G112)"},
		{0, 255, Unknown},
		{-1, 0, Unknown},
		{21, 0, Unknown},
	}

	for _, c := range cases {
		if got := Modal(c.group, c.value); got != c.want {
			t.Fatalf("Modal(%d, %d): got=%q want=%q", c.group, c.value, got, c.want)
		}
	}
}

func TestModal_GroupSizes(t *testing.T) {
	for g, tbl := range modalTable {
		if len(tbl) < 2 || len(tbl) > 19 {
			t.Fatalf("group %d: unexpected size %d", g, len(tbl))
		}
	}
}

func TestOneShot(t *testing.T) {
	cases := map[byte]string{
		0:   "G04",
		5:   "G28",
		6:   "G29",
		127: "G37.3",
		2:   Unknown,
		200: Unknown,
	}
	for v, want := range cases {
		if got := OneShot(v); got != want {
			t.Fatalf("OneShot(%d): got=%q want=%q", v, got, want)
		}
	}

	if len(oneShotTable) != 38 {
		t.Fatalf("one-shot table size: got=%d want=38", len(oneShotTable))
	}
}

func TestOtherAddress(t *testing.T) {
	cases := map[int]string{
		100: "B",
		102: "-",
		103: "F",
		106: "M",
		122: "X",
		125: "M",
		126: "M",
		99:  Unknown,
		127: Unknown,
		999: Unknown,
	}
	for sub, want := range cases {
		if got := OtherAddress(sub); got != want {
			t.Fatalf("OtherAddress(%d): got=%q want=%q", sub, got, want)
		}
	}
}

func TestGroupName(t *testing.T) {
	if got := GroupName(13); got != "work coordinate system" {
		t.Fatalf("GroupName(13): got=%q", got)
	}
	if got := GroupName(0); got != "motion" {
		t.Fatalf("GroupName(0): got=%q", got)
	}
	if got := GroupName(21); got != Unknown {
		t.Fatalf("GroupName(21): got=%q want=%q", got, Unknown)
	}
}
