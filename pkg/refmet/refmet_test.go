package refmet

import (
	"reflect"
	"strings"
	"testing"
)

const sampleList = "\tname\texactmass\tmain_class\n" +
	"0\tCE(16:1)\t622.5689\tSterol esters\n" +
	"1\tCholesterol\t386.3549\tSteroids\n" +
	"2\tDHA\t328.2402\tFatty acids\n" +
	"3\tTG(16:0/18:1/18:2)\t856.7520\tTriradylglycerols\n" +
	"4\tSucrose\t342.1162\tDisaccharides\n" +
	"5\tFAHFA(16:0/10:0)\t\tFatty esters\n"

func TestLoadCSV(t *testing.T) {
	compounds, err := LoadCSV(strings.NewReader(sampleList))
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if len(compounds) != 6 {
		t.Fatalf("got %d compounds, want 6", len(compounds))
	}

	want := Compound{Name: "CE(16:1)", ExactMass: 622.5689, MainClass: "Sterol esters"}
	if compounds[0] != want {
		t.Errorf("compounds[0] = %+v, want %+v", compounds[0], want)
	}
	// empty mass cell stays zero
	if compounds[5].ExactMass != 0 {
		t.Errorf("empty mass parsed as %g, want 0", compounds[5].ExactMass)
	}
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty input", "", "empty input"},
		{"missing columns", "name\texactmass\nDHA\t328.2402\n", "main_class"},
		{"short line", "name\texactmass\tmain_class\nDHA\n", "line 2"},
		{"bad mass", "name\texactmass\tmain_class\nDHA\theavy\tFatty acids\n", `invalid mass value "heavy"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	compounds, err := LoadCSV(strings.NewReader(sampleList))
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}

	kept := Filter(compounds, DefaultSkipClasses())

	// Cholesterol and DHA carry no residue token, Sucrose is a skipped class
	var names []string
	for _, c := range kept {
		names = append(names, c.Name)
	}
	want := []string{"CE(16:1)", "TG(16:0/18:1/18:2)", "FAHFA(16:0/10:0)"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("kept = %v, want %v", names, want)
	}
}

func TestFilterSkipClassWithResidueToken(t *testing.T) {
	compounds := []Compound{
		{Name: "Fancy steroid 18:1", MainClass: "Steroids"},
	}
	if kept := Filter(compounds, DefaultSkipClasses()); len(kept) != 0 {
		t.Errorf("kept = %v, want none", kept)
	}
}

func TestFattyClasses(t *testing.T) {
	compounds, err := LoadCSV(strings.NewReader(sampleList))
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}

	classes := FattyClasses(compounds)
	want := map[string]bool{"Fatty acids": true, "Fatty esters": true}
	if !reflect.DeepEqual(classes, want) {
		t.Errorf("classes = %v, want %v", classes, want)
	}
}
