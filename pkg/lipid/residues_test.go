package lipid

import (
	"reflect"
	"testing"
)

func TestRefMetResidues(t *testing.T) {
	tests := []struct {
		name         string
		lipid        string
		drop         bool
		wantResidues []string
		wantDividend int
	}{
		{
			name:         "simple",
			lipid:        "TG(18:4_20:4_27:0)",
			wantResidues: []string{"18:4", "20:4", "27:0"},
			wantDividend: 1,
		},
		{
			name:         "isobars",
			lipid:        "PS(P-16:1/17:0)/PS(O-16:2/17:0)",
			wantResidues: []string{"16:1", "17:0", "16:2", "17:0"},
			wantDividend: 2,
		},
		{
			name:         "isobars dropped",
			lipid:        "PS(P-16:1/17:0)/PS(O-16:2/17:0)",
			drop:         true,
			wantResidues: nil,
			wantDividend: 0,
		},
		{
			name:         "no parenthesis",
			lipid:        "CE 12:0",
			wantResidues: []string{"12:0"},
			wantDividend: 1,
		},
		{
			name:         "double bond geometry annotations",
			lipid:        "PE(22:6(4Z,7Z,10Z,13Z,16Z,19Z)_22:6(4Z,7Z,10Z,13Z,16Z,19Z))",
			wantResidues: []string{"22:6", "22:6"},
			wantDividend: 1,
		},
		{
			name:         "9E annotation",
			lipid:        "DG(18:1(9E)/0:0/0:0/18:1(9E))",
			wantResidues: []string{"18:1", "0:0", "0:0", "18:1"},
			wantDividend: 1,
		},
		{
			name:         "hydroxyl annotation",
			lipid:        "Cer(d18:1/16:0(OH))",
			wantResidues: []string{"18:1", "16:0"},
			wantDividend: 1,
		},
		{
			name:         "composite ester name",
			lipid:        "Oleyl arachidonate",
			wantResidues: []string{"18:1", "20:4"},
			wantDividend: 1,
		},
		{
			name:         "trivial name",
			lipid:        "Arachidonic acid",
			wantResidues: []string{"20:4"},
			wantDividend: 1,
		},
		{
			name:         "not a lipid",
			lipid:        "Uranium phosphate",
			wantResidues: nil,
			wantDividend: 0,
		},
		{
			name:         "empty",
			lipid:        "",
			wantResidues: nil,
			wantDividend: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			residues, dividend := New(tt.lipid, 0, "picomoles").RefMetResidues(tt.drop)
			if !reflect.DeepEqual(residues, tt.wantResidues) {
				t.Errorf("residues = %v, want %v", residues, tt.wantResidues)
			}
			if dividend != tt.wantDividend {
				t.Errorf("dividend = %d, want %d", dividend, tt.wantDividend)
			}
		})
	}
}

func TestLegacyResidues(t *testing.T) {
	tests := []struct {
		name         string
		lipid        string
		drop         bool
		wantResidues []string
		wantDividend int
	}{
		{
			name:         "simple",
			lipid:        "CE 12:0",
			wantResidues: []string{"12:0"},
			wantDividend: 1,
		},
		{
			// The leading 52:4 token is a total-carbon summary, not a
			// residue, and must be dropped.
			name:         "TAG with two alternatives",
			lipid:        "TAG 52:4 total (16:0/18:1/18:3)(16:0/18:2/18:2)",
			wantResidues: []string{"16:0", "18:1", "18:3", "16:0", "18:2", "18:2"},
			wantDividend: 2,
		},
		{
			name:         "TAG with two alternatives dropped",
			lipid:        "TAG 52:4 total (16:0/18:1/18:3)(16:0/18:2/18:2)",
			drop:         true,
			wantResidues: nil,
			wantDividend: 0,
		},
		{
			name:         "ambiguous sphingomyelin",
			lipid:        "SM 34:1",
			wantResidues: []string{"34:1"},
			wantDividend: 2,
		},
		{
			name:         "PC plasmalogen always ambiguous",
			lipid:        "PC P-34:1",
			drop:         true,
			wantResidues: nil,
			wantDividend: 0,
		},
		{
			name:         "not a lipid",
			lipid:        "Uranium phosphate",
			wantResidues: nil,
			wantDividend: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			residues, dividend := New(tt.lipid, 0, "picomoles").LegacyResidues(tt.drop)
			if !reflect.DeepEqual(residues, tt.wantResidues) {
				t.Errorf("residues = %v, want %v", residues, tt.wantResidues)
			}
			if dividend != tt.wantDividend {
				t.Errorf("dividend = %d, want %d", dividend, tt.wantDividend)
			}
		})
	}
}

func TestLegacyDividend(t *testing.T) {
	tests := []struct {
		name          string
		class         string
		nameLen       int
		wantDividend  int
		wantAmbiguous bool
	}{
		{"TAG single", "TAG", 31, 1, false},
		{"TAG two alternatives", "TAG", 47, 2, true},
		{"TAG three alternatives", "TAG", 63, 3, true},
		{"TAG short", "TAG", 20, 3, true},
		{"SM single", "SM", 15, 1, false},
		{"SM ambiguous", "SM", 7, 2, true},
		{"PC P always ambiguous", "PC P", 14, 2, true},
		{"PE P single", "PE P", 14, 1, false},
		{"PE P ambiguous", "PE P", 20, 2, true},
		{"default", "CE", 99, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dividend, ambiguous := legacyDividend(tt.class, tt.nameLen)
			if dividend != tt.wantDividend || ambiguous != tt.wantAmbiguous {
				t.Errorf("legacyDividend(%q, %d) = (%d, %v), want (%d, %v)",
					tt.class, tt.nameLen, dividend, ambiguous, tt.wantDividend, tt.wantAmbiguous)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "regiochemistry prefix passes through",
			in:   "1,2-dioleoyl-glycerol",
			want: "1,2-dioleoyl-glycerol",
		},
		{
			name: "stereo descriptors removed",
			in:   "PE(22:6(4Z,7Z,10Z,13Z,16Z,19Z)_22:6(4Z,7Z,10Z,13Z,16Z,19Z))",
			want: "PE(22:6_22:6)",
		},
		{
			name: "hydroxyl removed",
			in:   "Cer(d18:1/16:0(OH))",
			want: "Cer(d18:1/16:0)",
		},
		{
			name: "9E removed",
			in:   "DG(18:1(9E)/0:0/0:0/18:1(9E))",
			want: "DG(18:1/0:0/0:0/18:1)",
		},
		{
			name: "plain names untouched",
			in:   "TG(18:4_20:4_27:0)",
			want: "TG(18:4_20:4_27:0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeName(tt.in)
			if got != tt.want {
				t.Errorf("normalizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompleteTokens(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"complete kept", []string{"18:1", "0:0"}, []string{"18:1", "0:0"}},
		{"bare colon dropped", []string{":"}, nil},
		{"half tokens dropped", []string{"18:", ":1", "16:0"}, []string{"16:0"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := completeTokens(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("completeTokens(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
