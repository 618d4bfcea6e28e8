package lipid

import "testing"

func TestLegacyClass(t *testing.T) {
	tests := []struct {
		name  string
		lipid string
		want  string
	}{
		{"bare PC", "PC", "PC"},
		{"bare PE", "PE", "PE"},
		{"cholesteryl ester", "CE 12:0", "CE"},
		{"PC with digits", "PC 34:1", "PC"},
		{"PE with digits", "PE 36:2", "PE"},
		{"PC plasmalogen", "PC P-34:1", "PC P"},
		{"PE plasmalogen", "PE P-36:4", "PE P"},
		{"triacylglycerol", "TAG 52:4 total (16:0/18:1/18:3)", "TAG"},
		{"sphingomyelin", "SM 34:1", "SM"},
		{"bare residue", "18:1", "18:1"},
		{"not a lipid", "Uranium phosphate", UnknownClass},
		{"empty", "", UnknownClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.lipid, 0, "picomoles").LegacyClass()
			if got != tt.want {
				t.Errorf("LegacyClass(%q) = %q, want %q", tt.lipid, got, tt.want)
			}
		})
	}
}

func TestRefMetClass(t *testing.T) {
	tests := []struct {
		name  string
		lipid string
		want  string
	}{
		{"triacylglycerol", "TG(18:4_20:4_27:0)", "TG"},
		{"phosphoserine isobars", "PS(P-16:1/17:0)/PS(O-16:2/17:0)", "PS"},
		{"bare PC", "PC", "PC"},
		{"regiochemistry prefix", "1,2-dioleoyl-glycerol", "DG"},
		{"trailing space before parenthesis", "PC (16:0/18:1)", "PC"},
		{"no parenthesis", "Oleyl arachidonate", "Oleyl arachidonate"},
		{"empty", "", UnknownClass},
		{"single space", " ", UnknownClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.lipid, 0, "picomoles").RefMetClass()
			if got != tt.want {
				t.Errorf("RefMetClass(%q) = %q, want %q", tt.lipid, got, tt.want)
			}
		})
	}
}

func TestRefMetFullClass(t *testing.T) {
	tests := []struct {
		name  string
		lipid string
		want  string
	}{
		{"triacylglycerol", "TG(18:4_20:4_27:0)", "Triradylglycerols"},
		{"phosphocholine", "PC(16:0/18:1)", "Glycerophosphocholines"},
		{"phosphoserine", "PS(P-16:1/17:0)/PS(O-16:2/17:0)", "Glycerophosphoserines"},
		{"diradylglycerol", "1,2-dioleoyl-glycerol", "Diradylglycerols"},
		{"sterol ester", "CE(18:2)", "Sterol esters"},
		{"fatty acid", "FA(27:1)", "Fatty acid"},
		{"composite name", "Oleyl arachidonate", UnknownClass},
		{"not a lipid", "Uranium phosphate", UnknownClass},
		{"empty", "", UnknownClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.lipid, 0, "picomoles").RefMetFullClass()
			if got != tt.want {
				t.Errorf("RefMetFullClass(%q) = %q, want %q", tt.lipid, got, tt.want)
			}
		})
	}
}
