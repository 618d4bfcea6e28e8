// Package lipid provides lipid name classification and fatty-acid residue
// extraction for the two nomenclature conventions found in lipidomics
// reports: the RefMet reference nomenclature and the looser naming scheme
// used by some commercial services.
package lipid

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownClass is returned when a name cannot be attributed to any class.
const UnknownClass = "unknown lipid type"

// unitConversion maps unit names to Avogadro-scaled molecule factors.
var unitConversion = map[string]float64{
	"moles":      6.022140857e+23,
	"millimoles": 6.022140857e+20,
	"micromoles": 6.022140857e+17,
	"nanomoles":  6.022140857e+14,
	"picomoles":  6.022140857e+11,
	"femtomoles": 6.022140857e+8,
	"attomoles":  6.022140857e+5,
	"zeptomoles": 6.022140857e+2,
}

// ConversionFactor returns the molecules-per-unit factor for a unit name.
// An unrecognized unit yields 0, so the resulting molecule count is silently
// zero. This quirk is kept for compatibility with existing pipelines; callers
// that care should check the unit against the known set up front.
func ConversionFactor(unit string) float64 {
	return unitConversion[unit]
}

// Units returns the recognized unit names.
func Units() []string {
	units := make([]string, 0, len(unitConversion))
	for u := range unitConversion {
		units = append(units, u)
	}
	return units
}

// Lipid represents one named lipid occurrence with its reported amount.
// Amount is in the unit given at construction; Molecules is the absolute
// particle count derived from it.
type Lipid struct {
	Name      string
	Amount    float64
	Molecules float64
}

// New creates a Lipid from a name, an amount and the unit the amount is
// expressed in (e.g. "picomoles").
func New(name string, amount float64, unit string) Lipid {
	return Lipid{
		Name:      name,
		Amount:    amount,
		Molecules: amount * ConversionFactor(unit),
	}
}

// Saturated reports whether a residue token such as "20:3" denotes a
// saturated fatty acid (zero double bonds).
func Saturated(token string) (bool, error) {
	i := strings.IndexByte(token, ':')
	if i == -1 {
		return false, fmt.Errorf("%q must be in the form (example): '20:3'", token)
	}
	bonds, err := strconv.Atoi(token[i+1:])
	if err != nil {
		return false, fmt.Errorf("%q must be in the form (example): '20:3'", token)
	}
	return bonds == 0, nil
}

// MaxCarbon reports whether a residue token's carbon backbone is within the
// allowed number of carbon atoms.
func MaxCarbon(token string, carbon int) (bool, error) {
	i := strings.IndexByte(token, ':')
	if i == -1 {
		return false, fmt.Errorf("%q must be in the form (example): '20:3'", token)
	}
	backbone, err := strconv.Atoi(token[:i])
	if err != nil {
		return false, fmt.Errorf("%q must be in the form (example): '20:3'", token)
	}
	return backbone <= carbon, nil
}
