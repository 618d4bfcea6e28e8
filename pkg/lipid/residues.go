package lipid

import (
	"regexp"
	"strings"
)

var (
	// residuePattern captures carbon:doubleBond tokens. Either side may be
	// empty in the raw match; half-empty tokens are filtered before they are
	// returned to callers.
	residuePattern = regexp.MustCompile(`\d*:\d*`)

	// groupPattern finds parenthesized entities. Under RefMet naming each
	// parenthesized entity is one mass isomer, so their count is the
	// dividend used to apportion amounts across ambiguous species.
	groupPattern = regexp.MustCompile(`\(.*?\)`)
)

// completeTokens drops matches that are missing the carbon or double-bond
// side, e.g. ":" or "18:". Conformant output carries both digit groups.
func completeTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		i := strings.IndexByte(tok, ':')
		if i > 0 && i < len(tok)-1 {
			out = append(out, tok)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// RefMetResidues extracts the fatty-acid residues of a RefMet-named lipid.
//
// Reads something like PE(22:6(4Z,7Z,10Z,13Z,16Z,19Z)_22:6(4Z,7Z,10Z,13Z,16Z,19Z))
// and returns (["22:6", "22:6"], 1). The dividend counts the mass isomers
// the name could represent; each residue's amount should be divided by it.
// Separators within a parenthesized entity carry mixed meaning in the wild:
//
//	TG(23:0/23:0/23:0)            one entity, unambiguous
//	PE(P-18:0/25:0)/PE(O-18:1/25:0)  two entities, two mass isomers
//
// so ambiguity is decided by the number of parenthesized entities alone.
// With dropAmbiguous set, ambiguous names return (nil, 0) instead.
//
// Names carrying no explicit residue token are resolved through the trivial
// fatty-acid name table; two-word names ending in "ate" (ester naming, e.g.
// "Oleyl arachidonate") resolve each word independently.
func (l Lipid) RefMetResidues(dropAmbiguous bool) ([]string, int) {
	name := normalizeName(l.Name)

	raw := residuePattern.FindAllString(name, -1)
	if len(raw) == 0 {
		// no residue tokens present; try to recognize a named fatty acid
		if strings.HasSuffix(name, "ate") {
			words := strings.Split(name, " ")
			if len(words) != 2 {
				return nil, 0
			}
			var all []string
			for _, word := range words {
				res, div := lookupNamedAcid(word)
				if div != 0 {
					all = append(all, res...)
				}
			}
			if len(all) == 0 {
				return nil, 0
			}
			return all, 1
		}
		return lookupNamedAcid(name)
	}

	dividend := len(groupPattern.FindAllString(name, -1))
	if dividend < 1 {
		dividend = 1
	}
	if dropAmbiguous && dividend > 1 {
		return nil, 0
	}
	return completeTokens(raw), dividend
}

// LegacyResidues extracts the fatty-acid residues of a lipid named under
// the commercial scheme, e.g. "PG 18:1/22:4" -> (["18:1", "22:4"], 1).
//
// The legacy nomenclature does not bound parenthetical groups the way
// RefMet does, so the dividend comes from a per-class name-length
// heuristic instead. For TAG entries the first captured token is a
// total-carbon:total-double-bond summary, not a residue, and is dropped:
// "TAG 52:4 total (16:0/18:1/18:3)(16:0/18:2/18:2)" returns
// (["16:0", "18:1", "18:3", "16:0", "18:2", "18:2"], 2). With dropAmbiguous
// set, ambiguous names return (nil, 0) instead.
func (l Lipid) LegacyResidues(dropAmbiguous bool) ([]string, int) {
	raw := residuePattern.FindAllString(l.Name, -1)
	class := l.LegacyClass()

	dividend, ambiguous := legacyDividend(class, len(l.Name))
	if dropAmbiguous && ambiguous {
		return nil, 0
	}
	if class == "TAG" && len(raw) > 0 {
		raw = raw[1:]
	}
	return completeTokens(raw), dividend
}

// legacyDividend applies the per-class length heuristic: the name length is
// a crude but stable proxy for how many alternative residue combinations
// are parenthesized after the class token.
func legacyDividend(class string, nameLen int) (dividend int, ambiguous bool) {
	switch class {
	case "TAG":
		switch {
		case nameLen == 31:
			return 1, false
		case nameLen > 31 && nameLen < 63:
			return 2, true
		default:
			return 3, true
		}
	case "SM":
		if nameLen == 15 {
			return 1, false
		}
		return 2, true
	case "PC P":
		return 2, true
	case "PE P":
		if nameLen == 14 {
			return 1, false
		}
		return 2, true
	default:
		return 1, false
	}
}
