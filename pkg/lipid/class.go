package lipid

import (
	"regexp"
	"strings"
)

var (
	legacyClassPattern = regexp.MustCompile(`CE|Cer|DAG|FC|Gb3|Glc|Lac|LPC|LPE|LPI|PA|PC \d|PC O|PC P|PE \d|PE P|PE O|PG|PI|PS|SM|TAG`)
	pcDigitPattern     = regexp.MustCompile(`PC \d`)
	peDigitPattern     = regexp.MustCompile(`PE \d`)
)

// legacyBareResidues lists the residue tokens that appear on their own as
// row names in commercial reports; such a name is its own "class".
var legacyBareResidues = map[string]bool{
	"17:1": true, "13:2": true, "14:1": true, "15:0": true, "20:3": true,
	"13:1": true, "20:1": true, "19:0": true, "17:0": true, "22:2": true,
	"19:1": true, "14:0": true, "22:1": true, "21:1": true, "16:1": true,
	"18:1": true, "18:2": true, "20:4": true, "18:0": true, "22:3": true,
	"22:4": true, "23:0": true, "16:0": true, "22:6": true, "19:2": true,
	"23:1": true, "25:1": true, "18:3": true, "12:0": true, "22:5": true,
	"20:5": true, "20:2": true, "20:0": true, "24:1": true, "15:1": true,
	"23:2": true, "24:0": true, "26:0": true, "15:2": true, "26:1": true,
	"21:0": true, "22:0": true, "24:5": true, "25:2": true, "24:2": true,
}

// LegacyClass attributes the lipid to a class under the ad-hoc naming
// scheme used by some commercial lipidomics services. Names that fall
// outside the known class tokens are checked against the bare residue
// list before giving up.
func (l Lipid) LegacyClass() string {
	name := l.Name

	// when working with whole classes, there's no PC or PE followed by digits
	if name == "PC" || name == "PE" {
		return name
	}

	matched := legacyClassPattern.FindString(name)
	if matched == "" {
		if legacyBareResidues[name] {
			return name
		}
		return UnknownClass
	}

	// grouping PC \d and PE \d classes
	switch {
	case pcDigitPattern.MatchString(matched):
		return "PC"
	case peDigitPattern.MatchString(matched):
		return "PE"
	}
	return matched
}

// RefMetClass extracts the lipid class from a RefMet-compliant name: the
// substring before the first parenthesis, or the whole name if there is
// none. A "1," prefix denotes a DG regioisomer.
func (l Lipid) RefMetClass() string {
	name := l.Name

	if strings.HasPrefix(name, "1,") {
		return "DG"
	}

	class := name
	if i := strings.IndexByte(name, '('); i != -1 {
		class = name[:i]
	}
	if class == "" {
		return UnknownClass
	}

	// give a chance to lipids annotated with a trailing whitespace
	if strings.HasSuffix(class, " ") {
		class = class[:len(class)-1]
		if class == "" {
			return UnknownClass
		}
	}

	return class
}

// refmetClassBook maps RefMet class abbreviations to full class names.
var refmetClassBook = map[string]string{
	"CAR":                "Fatty esters",
	"CoA":                "Fatty esters",
	"FAHFA":              "Fatty esters",
	"DG":                 "Diradylglycerols",
	"DGDG":               "Glycosyldiradylglycerols",
	"MGDG":               "Glycosyldiradylglycerols",
	"MG":                 "Monoradylglycerols",
	"MeDAG":              "Triradylglycerols",
	"TG":                 "Triradylglycerols",
	"CL":                 "Cardiolipins",
	"CDP-DG":             "CDP-Glycerols",
	"LPA":                "Glycerophosphates",
	"PA":                 "Glycerophosphates",
	"LPC":                "Glycerophosphocholines",
	"PC":                 "Glycerophosphocholines",
	"LPE":                "Glycerophosphoethanolamines",
	"PE":                 "Glycerophosphoethanolamines",
	"LPG":                "Glycerophosphoglycerols",
	"LPGP":               "Glycerophosphoglycerols",
	"PG":                 "Glycerophosphoglycerols",
	"PIP2":               "Glycerophosphoinositol phosphates",
	"PIP3":               "Glycerophosphoinositol phosphates",
	"LPI":                "Glycerophosphoinositols",
	"LPIP":               "Glycerophosphoinositols",
	"LPIP2":              "Glycerophosphoinositols",
	"LPIP3":              "Glycerophosphoinositols",
	"PI":                 "Glycerophosphoinositols",
	"LPS":                "Glycerophosphoserines",
	"PS":                 "Glycerophosphoserines",
	"CPA":                "Other Glycerophospholipids",
	"1-DeoxyCer":         "Ceramides",
	"Cer":                "Ceramides",
	"CerP":               "Ceramides",
	"PI-Cer":             "Ceramides",
	"GD1":                "Glycosphingolipids",
	"GD2":                "Glycosphingolipids",
	"GD3":                "Glycosphingolipids",
	"GM1":                "Glycosphingolipids",
	"GM2":                "Glycosphingolipids",
	"GM3":                "Glycosphingolipids",
	"GM4":                "Glycosphingolipids",
	"GT1a":               "Glycosphingolipids",
	"GT1b":               "Glycosphingolipids",
	"GT2":                "Glycosphingolipids",
	"GT3":                "Glycosphingolipids",
	"GlcAbeta-Cer":       "Glycosphingolipids",
	"GalCer":             "Glycosphingolipids",
	"GlcCer":             "Glycosphingolipids",
	"HexCer":             "Glycosphingolipids",
	"Hex2Cer":            "Glycosphingolipids",
	"LacCer":             "Glycosphingolipids",
	"Sulfatide":          "Glycosphingolipids",
	"PE-Cer":             "Phosphosphingolipids",
	"unknown lipid type": "unknown lipid type",
	"Iso":                "Sphingoid bases",
	"SM":                 "Sphingomyelins",
	"Campesterol ester":  "Sterol esters",
	"CE":                 "Sterol esters",
	"Sitosterol Ester":   "Sterol esters",
	"Stigmasterol Ester": "Sterol esters",
	"FA":                 "Fatty acid", // example: FA(27:1), Heptacosadienoic acid
}

// RefMetFullClass returns the full RefMet class name for the lipid, e.g.
// "Triradylglycerols" for a TG species.
func (l Lipid) RefMetFullClass() string {
	if full, ok := refmetClassBook[l.RefMetClass()]; ok {
		return full
	}
	return UnknownClass
}
