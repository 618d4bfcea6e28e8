package table

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		wantErr string
	}{
		{"valid", []string{"s1", "s2"}, ""},
		{"no columns", nil, "at least one sample column"},
		{"empty column name", []string{"s1", ""}, "empty name"},
		{"duplicate columns", []string{"s1", "s1"}, `duplicate column name "s1"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("test", tt.columns).Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestAddAccumulates(t *testing.T) {
	tab := New("test", []string{"s1"})
	tab.Add("16:1", "s1", 2)
	tab.Add("16:1", "s1", 3)

	if v, ok := tab.Value("16:1", "s1"); !ok || v != 5 {
		t.Errorf("16:1/s1 = %g, %v, want 5", v, ok)
	}
	if got := tab.NumRows(); got != 1 {
		t.Errorf("NumRows() = %d, want 1", got)
	}
}

func TestFill(t *testing.T) {
	tab := New("test", []string{"s1", "s2"})
	tab.Set("16:1", "s1", 2)
	tab.Fill(-1)

	if v, ok := tab.Value("16:1", "s2"); !ok || v != -1 {
		t.Errorf("16:1/s2 = %g, %v, want -1", v, ok)
	}
	// Fill must not overwrite populated cells
	if v, _ := tab.Value("16:1", "s1"); v != 2 {
		t.Errorf("16:1/s1 = %g, want 2", v)
	}
}
