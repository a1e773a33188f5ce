// internal/gcode/tables.go
package gcode

// Code tables.
// These values are dictated by the controller and MUST NOT be configurable.
// Tables are never mutated after init.

// ---- MODAL (indexed by group) ----

var modalTable = [ModalGroups]map[byte]string{
	// 0: motion
	{
		0: "G00", 1: "G01", 2: "G02", 3: "G03", 4: "G33",
		5: "G75", 6: "G77", 7: "G78", 8: "G79",
		10: "G02.2", 11: "G03.2", 12: "G02.3", 13: "G03.3",
		14: "G06.2", 15: "G02.4", 16: "G03.4",
		22: "G35", 23: "G36", 24: "G34",
	},
	// 1: plane selection (sparse indices are controller-defined)
	{0: "G17", 4: "G19", 8: "G18", 10: "G17.1"},
	// 2
	{0: "G90", 1: "G91"},
	// 3
	{0: "G23", 1: "G22"},
	// 4
	{0: "G94", 1: "G95", 2: "G93", 3: "G93.2"},
	// 5: units
	{0: "G20(G70)", 1: "G21(G71)"},
	// 6
	{
		0: "G40", 1: "G41", 2: "G42", 3: "G41.2", 4: "G42.2",
		5: "G41.3", 6: "G41.4", 7: "G42.4", 8: "G41.5", 9: "G42.5",
		10: "G41.6", 11: "G42.6",
	},
	// 7
	{
		0: "G49(G49.1)", 1: "G43", 2: "G44", 3: "G43.1",
		4: "G43.4", 5: "G43.5", 6: "G43.2", 7: "G43.3",
	},
	// 8: canned cycles
	{
		0: "G80", 1: "G81", 2: "G82", 3: "G83", 4: "G84",
		5: "G85", 6: "G86", 7: "G87", 8: "G88", 9: "G89",
		10: "G73", 11: "G74", 12: "G76", 13: "G84.2", 14: "G84.3",
		15: "G81.2",
	},
	// 9
	{0: "G98", 1: "G99"},
	// 10
	{0: "G50", 1: "G51"},
	// 11
	{0: "G67", 1: "G66", 2: "G66.1"},
	// 12
	{0: "G97", 1: "G96"},
	// 13: work offsets
	{0: "G54(G54.1)", 1: "G55", 2: "G56", 3: "G57", 4: "G58", 5: "G59"},
	// 14
	{0: "G64", 1: "G61", 2: "G62", 3: "G63"},
	// 15
	{0: "G69", 1: "G68", 2: "G68.2", 3: "G68.3"},
	// 16
	{0: "G15", 1: "G16"},
	// 17
	{0: "G40.1(G150)", 1: "G41.1(G151)", 2: "G42.1(G152)"},
	// 18
	{0: "G25", 1: "G26"},
	// 19
	{0: "G160", 1: "G161"},
	// 20
	{0: "G13.1(G113)", 1: "G12.1(G112)"},
}

var groupNames = [ModalGroups]string{
	"motion",
	"plane selection",
	"absolute/incremental",
	"stored stroke check",
	"feed mode",
	"units",
	"cutter compensation",
	"tool length offset",
	"canned cycle",
	"canned cycle return",
	"scaling",
	"macro modal call",
	"constant surface speed",
	"work coordinate system",
	"cutting mode",
	"coordinate rotation",
	"polar coordinates",
	"normal direction control",
	"spindle speed fluctuation detection",
	"in-feed control",
	"polar coordinate interpolation",
}

// ---- ONE-SHOT (flat) ----

var oneShotTable = map[byte]string{
	0: "G04", 1: "G10", 4: "G27", 5: "G28", 6: "G29", 7: "G30",
	9: "G39", 14: "G92", 16: "G31(G31.1)", 17: "G60", 18: "G65",
	20: "G05", 21: "G11", 22: "G52", 24: "G37", 25: "G07.1(G107)",
	26: "G30.1", 27: "G10.6", 28: "G72.1", 29: "G72.2", 30: "G92.1",
	31: "G08",
	100: "G81.1", 104: "G05.1", 105: "G07", 106: "G31.8", 107: "G31.9",
	108: "G12.4", 109: "G13.4", 110: "G05.4", 111: "G10.9",
	112: "G31.2", 113: "G31.3", 114: "G31.4", 116: "G91.1",
	125: "G37.1", 126: "G37.2", 127: "G37.3",
}

// ---- OTHER ADDRESSES (subtype - OtherFirst) ----

var otherTable = [OtherLast - OtherFirst + 1]string{
	"B",    // 100
	"D",    // 101
	"-",    // 102
	"F",    // 103
	"H[M]", // 104
	"L",    // 105
	"M",    // 106
	"S",    // 107
	"T",    // 108
	"R[M]", // 109
	"P[M]", // 110
	"Q[M]", // 111
	"A",    // 112
	"C",    // 113
	"I",    // 114
	"J",    // 115
	"K",    // 116
	"N",    // 117
	"O",    // 118
	"U",    // 119
	"V",    // 120
	"W",    // 121
	"X",    // 122
	"Y",    // 123
	"Z",    // 124
	"M",    // 125
	"M",    // 126
}
