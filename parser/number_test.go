package parser

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func intParser() tp[int] {
	return Int[string]("expecting an int", "invalid int")
}

func floatParser() tp[float64] {
	return Float[string]("expecting a float", "invalid float")
}

type literal struct {
	kind  string
	value float64
}

func anyNumber() tp[literal] {
	whole := func(kind string) Convert[string, int, literal] {
		return Accept[string](func(n int) literal { return literal{kind: kind, value: float64(n)} })
	}
	return Number[string](NumberConfig[string, literal]{
		Int:       whole("int"),
		Hex:       whole("hex"),
		Octal:     whole("octal"),
		Binary:    whole("binary"),
		Float:     Accept[string](func(f float64) literal { return literal{kind: "float", value: f} }),
		Invalid:   "invalid",
		Expecting: "expecting number",
	})
}

func TestIntRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 7, 15, 42, 1000, 65535, 1<<31 - 1, 1 << 40, math.MaxInt} {
		source := strconv.Itoa(n)
		t.Run(source, func(t *testing.T) {
			got, err := Run(intParser(), source)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if got != n {
				t.Errorf("value = %d, want %d", got, n)
			}

			good, ok := runStep(intParser(), source+"ab").(Good[string, string, int])
			if !ok {
				t.Fatal("expected Good with trailing letters")
			}
			if good.Value != n || !good.Progress {
				t.Errorf("value = %d progress = %v", good.Value, good.Progress)
			}
			if good.State.Offset() != len(source) || good.State.Col() != len(source)+1 {
				t.Errorf("offset %d col %d, want %d %d", good.State.Offset(), good.State.Col(), len(source), len(source)+1)
			}
		})
	}
}

func TestIntRejectsFloat(t *testing.T) {
	_, err := Run(intParser(), "15.7")
	diffDeadEnds(t, mustDeadEnds(t, err), DeadEnds[string, string]{
		{Row: 1, Col: 1, Problem: "invalid int"},
	})
}

func TestIntRejectsOtherBases(t *testing.T) {
	for _, source := range []string{"0x1f", "0o17", "0b101", "1e3"} {
		t.Run(source, func(t *testing.T) {
			ok, progress := progressOf(t, runStep(intParser(), source))
			if ok || !progress {
				t.Errorf("step = (ok %v, progress %v), want (false, true)", ok, progress)
			}
		})
	}
}

func TestIntOverflow(t *testing.T) {
	_, err := Run(intParser(), "99999999999999999999")
	diffDeadEnds(t, mustDeadEnds(t, err), DeadEnds[string, string]{
		{Row: 1, Col: 1, Problem: "invalid int"},
	})
}

func TestIntExpecting(t *testing.T) {
	for _, source := range []string{"", "abc", "-1", "e5"} {
		t.Run(source, func(t *testing.T) {
			ok, progress := progressOf(t, runStep(intParser(), source))
			if ok || progress {
				t.Errorf("step = (ok %v, progress %v), want (false, false)", ok, progress)
			}
			_, err := Run(intParser(), source)
			diffDeadEnds(t, mustDeadEnds(t, err), DeadEnds[string, string]{
				{Row: 1, Col: 1, Problem: "expecting an int"},
			})
		})
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		source string
		want   float64
		rest   string
	}{
		{"15", 15, ""},
		{"15.7", 15.7, ""},
		{"0", 0, ""},
		{"0.5", 0.5, ""},
		{".25", 0.25, ""},
		{"1e3", 1000, ""},
		{"2.5E-2", 0.025, ""},
		{"6e+1x", 60, "x"},
		{"07", 0, "7"},
		{"1e999", math.Inf(1), ""},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			good, ok := runStep(floatParser(), tt.source).(Good[string, string, float64])
			if !ok {
				t.Fatal("expected Good")
			}
			if good.Value != tt.want {
				t.Errorf("value = %v, want %v", good.Value, tt.want)
			}
			if good.State.Rest() != tt.rest {
				t.Errorf("rest = %q, want %q", good.State.Rest(), tt.rest)
			}
		})
	}
}

func TestFloatMissingDigits(t *testing.T) {
	tests := []struct {
		source string
		col    int
	}{
		{"1.", 3},
		{"12.x", 4},
		{"1e", 3},
		{"1e+", 4},
		{"3.5E-z", 6},
		{".", 2},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			ok, progress := progressOf(t, runStep(floatParser(), tt.source))
			if ok || !progress {
				t.Errorf("step = (ok %v, progress %v), want (false, true)", ok, progress)
			}
			_, err := Run(floatParser(), tt.source)
			diffDeadEnds(t, mustDeadEnds(t, err), DeadEnds[string, string]{
				{Row: 1, Col: tt.col, Problem: "invalid float"},
			})
		})
	}
}

func TestFloatColumnOffsetByPosition(t *testing.T) {
	p := Skip(sym("x = "), floatParser())
	_, err := Run(p, "x = 4.e")
	diffDeadEnds(t, mustDeadEnds(t, err), DeadEnds[string, string]{
		{Row: 1, Col: 7, Problem: "invalid float"},
	})
}

func TestFloatOutOfRange(t *testing.T) {
	for _, source := range []string{"1e400", "x = 2.5E+999"} {
		t.Run(source, func(t *testing.T) {
			p := Skip(ChompWhile[string, string](func(r rune) bool { return r == 'x' || r == ' ' || r == '=' }), floatParser())
			ok, progress := progressOf(t, runStep(p, source))
			if ok || !progress {
				t.Errorf("step = (ok %v, progress %v), want (false, true)", ok, progress)
			}
			_, err := Run(p, source)
			col := len(source) - len(strings.TrimLeft(source, "x =")) + 1
			diffDeadEnds(t, mustDeadEnds(t, err), DeadEnds[string, string]{
				{Row: 1, Col: col, Problem: "invalid float"},
			})
		})
	}

	got, err := Run(floatParser(), "1e-400")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != 0 {
		t.Errorf("underflow = %v, want 0", got)
	}
}

func TestNumberBases(t *testing.T) {
	tests := []struct {
		source string
		want   literal
		rest   string
	}{
		{"42", literal{"int", 42}, ""},
		{"0x1F", literal{"hex", 31}, ""},
		{"0xffz", literal{"hex", 255}, "z"},
		{"0o17", literal{"octal", 15}, ""},
		{"0o19", literal{"octal", 1}, "9"},
		{"0b1011", literal{"binary", 11}, ""},
		{"0b12", literal{"binary", 1}, "2"},
		{"0", literal{"int", 0}, ""},
		{"0.75", literal{"float", 0.75}, ""},
		{"0e2", literal{"float", 0}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			good, ok := runStep(anyNumber(), tt.source).(Good[string, string, literal])
			if !ok {
				t.Fatal("expected Good")
			}
			if good.Value != tt.want {
				t.Errorf("value = %+v, want %+v", good.Value, tt.want)
			}
			if good.State.Rest() != tt.rest {
				t.Errorf("rest = %q, want %q", good.State.Rest(), tt.rest)
			}
			if !good.Progress {
				t.Error("expected progress")
			}
		})
	}
}

func TestNumberPrefixWithoutDigits(t *testing.T) {
	for _, source := range []string{"0x", "0xg", "0o8", "0b"} {
		t.Run(source, func(t *testing.T) {
			ok, progress := progressOf(t, runStep(anyNumber(), source))
			if ok || !progress {
				t.Errorf("step = (ok %v, progress %v), want (false, true)", ok, progress)
			}
			_, err := Run(anyNumber(), source)
			diffDeadEnds(t, mustDeadEnds(t, err), DeadEnds[string, string]{
				{Row: 1, Col: 1, Problem: "invalid"},
			})
		})
	}
}

func TestNumberRejectedKindReportsItsProblem(t *testing.T) {
	p := Number[string](NumberConfig[string, int]{
		Int:       Accept[string](func(n int) int { return n }),
		Hex:       Reject[string, int, int]("no hex here"),
		Octal:     Reject[string, int, int]("no octal here"),
		Binary:    Reject[string, int, int]("no binary here"),
		Float:     Reject[string, float64, int]("no floats here"),
		Invalid:   "invalid",
		Expecting: "expecting",
	})

	tests := map[string]string{
		"0x10": "no hex here",
		"0o10": "no octal here",
		"0b10": "no binary here",
		"1.5":  "no floats here",
	}

	for source, problem := range tests {
		t.Run(source, func(t *testing.T) {
			_, err := Run(p, source)
			diffDeadEnds(t, mustDeadEnds(t, err), DeadEnds[string, string]{
				{Row: 1, Col: 1, Problem: problem},
			})
		})
	}
}

func TestNumberInsideContext(t *testing.T) {
	p := Skip(sym("\n  "), InContext("literal", intParser()))
	_, err := Run(p, "\n  1.5")
	diffDeadEnds(t, mustDeadEnds(t, err), DeadEnds[string, string]{
		{Row: 2, Col: 3, Problem: "invalid int", ContextStack: []Located[string]{{Row: 2, Col: 3, Context: "literal"}}},
	})
}
