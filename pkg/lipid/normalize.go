package lipid

import (
	"regexp"
	"strings"
)

// stereoRunPattern matches a minimal parenthesized run that carries no
// residue token, i.e. a stereo/position descriptor such as "(4Z7Z10Z)".
var stereoRunPattern = regexp.MustCompile(`\(.[^:]*?\)`)

// normalizeName rewrites a raw lipid name for residue matching. Hydroxyl
// and double-bond geometry annotations contain digits that would be
// mis-captured as residue tokens, so they are stripped first. Names
// containing commas are then cleaned of their stereo descriptors, except
// names starting with "1," which denote a distinct glycerol regiochemistry
// and pass through untouched. Classification always reads the raw name,
// never the normalized one.
func normalizeName(name string) string {
	s := strings.ReplaceAll(name, "(OH)", "")
	// nasty DG(18:1(9E)/0:0/0:0/18:1(9E))
	s = strings.ReplaceAll(s, "(9E)", "")

	if strings.Contains(s, ",") {
		if strings.HasPrefix(s, "1,") {
			return s
		}
		s = strings.ReplaceAll(s, ",", "")
		for _, run := range stereoRunPattern.FindAllString(s, -1) {
			s = strings.ReplaceAll(s, run, "")
		}
	}

	return s
}
