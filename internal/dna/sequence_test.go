package dna

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	type args struct {
		seq  string
		desc string
	}
	tests := []struct {
		name     string
		args     args
		wantSeq  string
		wantDesc string
	}{
		{
			"valid sequence",
			args{"GATATC", "EcoRV"},
			"GATATC",
			"EcoRV",
		},
		{
			"too short",
			args{"AT", "short"},
			"ATG",
			"",
		},
		{
			"not a multiple of three",
			args{"ATGA", "four"},
			"ATG",
			"",
		},
		{
			"invalid nucleotide",
			args{"ATN", "ambiguous"},
			"ATG",
			"",
		},
		{
			"lowercase nucleotides",
			args{"atg", "lower"},
			"ATG",
			"",
		},
		{
			"newline in description",
			args{"GATATC", "Eco\nRV"},
			"ATG",
			"",
		},
		{
			"carriage return in description",
			args{"GATATC", "EcoRV\r"},
			"ATG",
			"",
		},
		{
			"empty description",
			args{"TTGCAA", ""},
			"TTGCAA",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.args.seq, tt.args.desc)
			if got.Seq() != tt.wantSeq {
				t.Errorf("New().Seq() = %v, want %v", got.Seq(), tt.wantSeq)
			}
			if got.Desc() != tt.wantDesc {
				t.Errorf("New().Desc() = %v, want %v", got.Desc(), tt.wantDesc)
			}
		})
	}
}

func TestSequence_zeroValue(t *testing.T) {
	var s Sequence
	if !s.Equal(Default()) {
		t.Errorf("zero Sequence = %v, want %v", s, Default())
	}
	if s.Len() != 3 {
		t.Errorf("zero Sequence.Len() = %d, want 3", s.Len())
	}
	if s != Default() {
		t.Errorf("zero Sequence == Default() is false, %#v != %#v", s, Default())
	}
	if New("GATATC", "bad\ndesc") != (Sequence{}) {
		t.Error("New() of an invalid sequence isn't the zero Sequence")
	}
}

func TestSequence_setters(t *testing.T) {
	s := New("GATATC", "EcoRV")

	if s.SetSeq("GATAT") {
		t.Error("SetSeq() accepted a sequence that isn't a multiple of three")
	}
	if s.Seq() != "GATATC" {
		t.Errorf("Seq() = %v after rejected SetSeq, want GATATC", s.Seq())
	}

	if !s.SetSeq("AAATTT") || s.Seq() != "AAATTT" {
		t.Errorf("SetSeq(AAATTT) didn't update the sequence: %v", s.Seq())
	}

	if s.SetDesc("two\nlines") {
		t.Error("SetDesc() accepted a description with a newline")
	}
	if s.Desc() != "EcoRV" {
		t.Errorf("Desc() = %v after rejected SetDesc, want EcoRV", s.Desc())
	}

	if !s.SetDesc("poly") || s.Desc() != "poly" {
		t.Errorf("SetDesc(poly) didn't update the description: %v", s.Desc())
	}
}

func TestSequence_Equal(t *testing.T) {
	a := New("GATGAT", "Cadena1")
	b := New("GATGAT", "Otra descripción")

	if a.Equal(b) {
		t.Error("Equal() true for sequences with different descriptions")
	}
	if !a.Equal(New("GATGAT", "Cadena1")) {
		t.Error("Equal() false for identical sequences")
	}
}

func TestSequence_composition(t *testing.T) {
	tests := []struct {
		name         string
		seq          string
		wantCounts   [4]int // A, T, C, G
		wantChargaff bool
		wantGC       float64
	}{
		{"balanced", "ATGCAT", [4]int{2, 2, 1, 1}, true, 2.0 / 6.0},
		{"all A", "AAA", [4]int{3, 0, 0, 0}, false, 0},
		{"all GC", "GCCGGC", [4]int{0, 0, 3, 3}, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.seq, "")
			gotCounts := [4]int{s.Count('A'), s.Count('T'), s.Count('C'), s.Count('G')}
			if gotCounts != tt.wantCounts {
				t.Errorf("counts = %v, want %v", gotCounts, tt.wantCounts)
			}
			if got := s.Chargaff(); got != tt.wantChargaff {
				t.Errorf("Chargaff() = %v, want %v", got, tt.wantChargaff)
			}
			if got := s.GC(); got != tt.wantGC {
				t.Errorf("GC() = %v, want %v", got, tt.wantGC)
			}
		})
	}
}

func TestSequence_CountPattern(t *testing.T) {
	s := New("AAAAAATTT", "")

	tests := []struct {
		name    string
		pattern string
		want    int
	}{
		{"overlapping matches", "AA", 5},
		{"single nucleotide", "T", 3},
		{"whole sequence", "AAAAAATTT", 1},
		{"longer than sequence", "AAAAAATTTA", 0},
		{"empty pattern", "", 0},
		{"absent", "G", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.CountPattern(tt.pattern); got != tt.want {
				t.Errorf("CountPattern(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestSequence_CodonCount(t *testing.T) {
	s := New("ATCATCATC", "")

	if got := s.CodonCount("ATC"); got != 3 {
		t.Errorf("CodonCount(ATC) = %d, want 3", got)
	}
	// overlapping: TCA starts at 1 and 4
	if got := s.CodonCount("TCA"); got != 2 {
		t.Errorf("CodonCount(TCA) = %d, want 2", got)
	}
	if got := s.CodonCount("AT"); got != 0 {
		t.Errorf("CodonCount(AT) = %d, want 0", got)
	}
}

func TestSequence_Index(t *testing.T) {
	s := New("GATATCGAT", "")

	tests := []struct {
		name      string
		pattern   string
		wantFirst int
		wantLast  int
	}{
		{"repeated", "GAT", 0, 6},
		{"once", "TC", 4, 4},
		{"absent", "CCC", -1, -1},
		{"empty", "", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Index(tt.pattern); got != tt.wantFirst {
				t.Errorf("Index(%q) = %v, want %v", tt.pattern, got, tt.wantFirst)
			}
			if got := s.LastIndex(tt.pattern); got != tt.wantLast {
				t.Errorf("LastIndex(%q) = %v, want %v", tt.pattern, got, tt.wantLast)
			}
		})
	}
}

func TestSequence_MaxRun(t *testing.T) {
	s := New("AATTTTCCG", "")

	tests := []struct {
		base byte
		want int
	}{
		{'A', 2},
		{'T', 4},
		{'C', 2},
		{'G', 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.base), func(t *testing.T) {
			if got := s.MaxRun(tt.base); got != tt.want {
				t.Errorf("MaxRun(%c) = %v, want %v", tt.base, got, tt.want)
			}
		})
	}

	if got := s.MaxRunAny(); got != 4 {
		t.Errorf("MaxRunAny() = %v, want 4", got)
	}

	// run at the end of the sequence
	if got := New("ACGGGG", "").MaxRunAny(); got != 4 {
		t.Errorf("MaxRunAny() = %v, want 4 for a trailing run", got)
	}
}

func TestSequence_Mutate(t *testing.T) {
	type args struct {
		pos  int
		base byte
	}
	tests := []struct {
		name    string
		args    args
		want    bool
		wantSeq string
	}{
		{"first position", args{0, 'C'}, true, "CTGAAA"},
		{"last position", args{5, 'G'}, true, "ATGAAG"},
		{"negative position", args{-1, 'C'}, false, "ATGAAA"},
		{"past the end", args{6, 'C'}, false, "ATGAAA"},
		{"invalid nucleotide", args{1, 'N'}, false, "ATGAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("ATGAAA", "")
			if got := s.Mutate(tt.args.pos, tt.args.base); got != tt.want {
				t.Errorf("Mutate() = %v, want %v", got, tt.want)
			}
			if s.Seq() != tt.wantSeq {
				t.Errorf("Seq() = %v, want %v", s.Seq(), tt.wantSeq)
			}
		})
	}
}

func TestSequence_Mutations(t *testing.T) {
	a := New("GATATC", "")

	tests := []struct {
		name  string
		other Sequence
		want  int
	}{
		{"identical", New("GATATC", "other desc"), 0},
		{"two changes", New("GTTATG", ""), 2},
		{"different lengths", New("GAT", ""), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Mutations(tt.other); got != tt.want {
				t.Errorf("Mutations() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSequence_IsComplement(t *testing.T) {
	a := New("ATGCAA", "")

	tests := []struct {
		name  string
		other Sequence
		want  bool
	}{
		{"complement", New("TACGTT", ""), true},
		{"one mismatch", New("TACGTA", ""), false},
		{"self", a, false},
		{"different lengths", New("TAC", ""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.IsComplement(tt.other); got != tt.want {
				t.Errorf("IsComplement() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSequence_RevComp(t *testing.T) {
	s := New("ATGCAA", "desc")
	s.RevComp()

	if s.Seq() != "TTGCAT" {
		t.Errorf("RevComp() = %v, want TTGCAT", s.Seq())
	}
	if s.Desc() != "desc" {
		t.Errorf("RevComp() changed the description to %v", s.Desc())
	}

	s.RevComp()
	if s.Seq() != "ATGCAA" {
		t.Errorf("RevComp() twice = %v, want ATGCAA", s.Seq())
	}
}

func TestSequence_Codons(t *testing.T) {
	tests := []struct {
		name string
		seq  Sequence
		want []string
	}{
		{"default", Default(), []string{"ATG"}},
		{"three codons", New("GATATCATC", ""), []string{"GAT", "ATC", "ATC"}},
		{"non-overlapping", New("CCTAGAATC", ""), []string{"CCT", "AGA", "ATC"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq.Codons(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Codons() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSequence_String(t *testing.T) {
	if got := New("ATG", "Inicio").String(); got != "Inicio:ATG" {
		t.Errorf("String() = %v, want Inicio:ATG", got)
	}
}
