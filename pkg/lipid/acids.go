package lipid

import "strings"

// acidRule maps a trivial-name fragment to its residue token. Rules are
// evaluated in slice order, first match wins. Exact rules match the whole
// lowercased name instead of a substring (needed for short acronyms like
// "epa" that would otherwise fire inside unrelated words).
type acidRule struct {
	trigger string
	token   string
	exact   bool
}

// namedAcidRules is the ordered trigger table for trivial fatty-acid names.
//
// The order is part of the contract: generic fragments such as "octan",
// "decan", "stear", "ole*" and "linol" sit at the very end because they are
// substrings of many longer compound names ("octadecanoic", "tetradecanoic",
// "linolenic", ...) that must be matched by their own, more specific rules
// first. Reordering this table changes behavior; treat any edit as such.
var namedAcidRules = []acidRule{
	{trigger: "acetic acid", token: "2:0"},
	{trigger: "acet", token: "2:0"}, // acetates catched with "-ate" catcher
	{trigger: "propion", token: "3:0"},
	{trigger: "propan", token: "3:0"},
	{trigger: "propen", token: "3:1"},
	{trigger: "acrylic", token: "3:1"},
	{trigger: "butyr", token: "4:0"},
	{trigger: "butan", token: "4:0"},
	{trigger: "buten", token: "4:1"},
	{trigger: "pentan", token: "5:0"},
	{trigger: "penten", token: "5:1"},
	{trigger: "valer", token: "5:0"},   // valeric acid
	{trigger: "levulin", token: "5:0"}, // levulinic acid (KETO-acid)
	{trigger: "hexan", token: "6:0"},
	{trigger: "hexen", token: "6:1"},
	{trigger: "hexadien", token: "6:2"},
	{trigger: "heptan", token: "7:0"},
	{trigger: "enanthi", token: "7:0"}, // enanthic acid
	{trigger: "heptylic", token: "7:0"},
	{trigger: "hepten", token: "7:1"},
	{trigger: "heptadien", token: "7:2"},
	{trigger: "heptatrien", token: "7:3"},
	{trigger: "nonan", token: "9:0"},
	{trigger: "nonen", token: "9:1"},
	{trigger: "nonadien", token: "9:2"},
	{trigger: "pelargo", token: "9:0"}, // pelargonic acid
	{trigger: "capric", token: "10:0"},
	{trigger: "caproyl", token: "10:0"},
	{trigger: "caproleic", token: "10:1"},
	{trigger: "caproleyl", token: "10:1"},
	{trigger: "undecan", token: "11:0"},
	{trigger: "undecyl", token: "11:0"},
	{trigger: "undecen", token: "11:1"},
	{trigger: "undecadien", token: "11:2"},
	{trigger: "undecatrien", token: "11:3"},
	{trigger: "dodecan", token: "12:0"},
	{trigger: "lauric", token: "12:0"},
	{trigger: "lauryl", token: "12:0"},
	{trigger: "lauroyl", token: "12:0"},
	{trigger: "dodecen", token: "12:1"},
	{trigger: "lauroleyc", token: "12:1"},
	{trigger: "lauroleyl", token: "12:1"},
	{trigger: "dodecadien", token: "12:2"},
	{trigger: "dodecatrien", token: "12:3"},
	{trigger: "dodecatetraen", token: "12:4"},
	{trigger: "dodecapentaen", token: "12:5"},
	{trigger: "dodecapenten", token: "12:5"},
	{trigger: "tridecan", token: "13:0"},
	{trigger: "tridecylic", token: "13:0"},
	{trigger: "tridecen", token: "13:1"},
	{trigger: "tridecadien", token: "13:2"},
	{trigger: "tridecatrien", token: "13:3"},
	{trigger: "tetradecan", token: "14:0"},
	{trigger: "myristic", token: "14:0"},
	{trigger: "myristoyl", token: "14:0"},
	{trigger: "tetradecen", token: "14:1"},
	{trigger: "myristoleic", token: "14:1"},
	{trigger: "myristoleyl", token: "14:1"},
	{trigger: "tetradecadien", token: "14:2"},
	{trigger: "tetradecatrien", token: "14:3"},
	{trigger: "tetradecatetraen", token: "14:4"},
	{trigger: "tetradecapentaen", token: "14:5"},
	{trigger: "tetradecapenten", token: "14:5"},
	{trigger: "hexadecan", token: "16:0"},
	{trigger: "pentadecan", token: "15:0"},
	{trigger: "pentadecyl", token: "15:0"},
	{trigger: "pentadecen", token: "15:1"},
	{trigger: "pentadecadien", token: "15:2"},
	{trigger: "pentadecatrien", token: "15:3"},
	{trigger: "pentadecatetraen", token: "15:4"},
	{trigger: "pentadecapentaen", token: "15:5"},
	{trigger: "pentadecapenten", token: "15:5"},
	{trigger: "palmit", token: "16:0"}, // palmitic acid
	{trigger: "hexadecen", token: "16:1"},
	{trigger: "hexadecadien", token: "16:2"},
	{trigger: "hexadecatrien", token: "16:3"},
	{trigger: "hexadecatetraen", token: "16:4"},
	{trigger: "hexadecapentaen", token: "16:5"},
	{trigger: "hexadecapenten", token: "16:5"},
	{trigger: "hexadecahexaen", token: "16:6"},
	{trigger: "hexadecahexen", token: "16:6"},
	{trigger: "hexadecaheptaen", token: "16:7"},
	{trigger: "hexadecahepten", token: "16:7"},
	{trigger: "heptadecan", token: "17:0"},
	{trigger: "margar", token: "17:0"}, // margaric acid
	{trigger: "heptadecen", token: "17:1"},
	{trigger: "heptadecadien", token: "17:2"},
	{trigger: "heptadecatrien", token: "17:3"},
	{trigger: "heptadecatetraen", token: "17:4"},
	{trigger: "heptadecapentaen", token: "17:5"},
	{trigger: "heptadecapenten", token: "17:5"},
	{trigger: "heptadecahexaen", token: "17:6"},
	{trigger: "heptadecahexen", token: "17:6"},
	{trigger: "heptadecaheptaen", token: "17:7"},
	{trigger: "heptadecahepten", token: "17:7"},
	{trigger: "octadecan", token: "18:0"},
	{trigger: "octadecen", token: "18:1"},
	{trigger: "vaccen", token: "18:1"}, // vaccenic acid
	{trigger: "octadecadien", token: "18:2"},
	{trigger: "linolelaid", token: "18:2"}, // linolelaidic acid
	{trigger: "octadecatrien", token: "18:3"},
	{trigger: "linolen", token: "18:3"},   // linolenic acid
	{trigger: "columbin", token: "18:3"},  // columbinic acid
	{trigger: "stearidon", token: "18:3"}, // stearidonic acid
	{trigger: "parinar", token: "18:4"},   // parinaric acid
	{trigger: "octadecatetraen", token: "18:4"},
	{trigger: "octadecapentaen", token: "18:5"},
	{trigger: "octadecapenten", token: "18:5"},
	{trigger: "octadecahexaen", token: "18:6"},
	{trigger: "octadecahexen", token: "18:6"},
	{trigger: "octadecaheptaen", token: "18:7"},
	{trigger: "octadecahepten", token: "18:7"},
	{trigger: "nonadecan", token: "19:0"},
	{trigger: "nonadecylic", token: "19:0"},
	{trigger: "nonadecen", token: "19:1"},
	{trigger: "nonadecadien", token: "19:2"},
	{trigger: "nonadecatrien", token: "19:3"},
	{trigger: "nonadecatetraen", token: "19:4"},
	{trigger: "nonadecapentaen", token: "19:5"},
	{trigger: "nonadecapenten", token: "19:5"},
	{trigger: "nonadecahexaen", token: "19:6"},
	{trigger: "nonadecahexen", token: "19:6"},
	{trigger: "nonadecaheptaen", token: "19:7"},
	{trigger: "nonadecahepten", token: "19:7"},
	{trigger: "arachidic", token: "20:0"},
	{trigger: "arachida", token: "20:0"},
	{trigger: "arachidyl", token: "20:0"},
	{trigger: "eicosenoic", token: "20:1"},
	{trigger: "eicosenyl", token: "20:1"},
	{trigger: "gadoleic", token: "20:1"},
	{trigger: "gadoleyl", token: "20:1"},
	{trigger: "eicosadienoic", token: "20:2"},
	{trigger: "eicosadienoyl", token: "20:2"},
	{trigger: "eicosatrienoic", token: "20:3"},
	{trigger: "eicosatrienoyl", token: "20:3"},
	{trigger: "mead acid", token: "20:3"},
	{trigger: "eicosatetraen", token: "20:4"},
	{trigger: "arachidon", token: "20:4"},
	{trigger: "eicosapentenoic", token: "20:5"},
	{trigger: "eicosapentenoyl", token: "20:5"},
	{trigger: "eicosapentaenoic", token: "20:5"},
	{trigger: "eicosapentaenoyl", token: "20:5"},
	{trigger: "timnodon", token: "20:5"}, // timnodonic acid
	{trigger: "epa", token: "20:5", exact: true},
	{trigger: "heneicosan", token: "21:0"},
	{trigger: "heneicosen", token: "21:1"},
	{trigger: "heneicosaen", token: "21:1"},
	{trigger: "heneicosadien", token: "21:2"},
	{trigger: "heneicosatrien", token: "21:3"},
	{trigger: "heneicosatetraen", token: "21:4"},
	{trigger: "heneicosapenten", token: "21:5"},
	{trigger: "heneicosapentaen", token: "21:5"},
	{trigger: "heneicosahexen", token: "21:6"},
	{trigger: "heneicosahexaen", token: "21:6"},
	{trigger: "docosanoic", token: "22:1"},
	{trigger: "docosanoyl", token: "22:1"},
	{trigger: "behen", token: "22:0"},
	{trigger: "erucic", token: "22:1"},    // (Z)-docos-13-enoic acid
	{trigger: "erucyl", token: "22:1"},
	{trigger: "brassidic", token: "22:1"}, // (E)-docos-13-enoic acid
	{trigger: "brassidoyl", token: "22:1"},
	{trigger: "docosenoic", token: "22:1"},
	{trigger: "docosenoyl", token: "22:1"},
	{trigger: "docosadieno", token: "22:2"},
	{trigger: "brassic", token: "22:2"},
	{trigger: "docosatrien", token: "22:3"},
	{trigger: "docosatetraenoic", token: "22:4"},
	{trigger: "docosatetraenoyl", token: "22:4"},
	{trigger: "docosapentenoic", token: "22:5"},
	{trigger: "docosapentenoyl", token: "22:5"},
	{trigger: "docosapentaenoic", token: "22:5"},
	{trigger: "docosapentaenoyl", token: "22:5"},
	{trigger: "clupanodon", token: "22:5"}, // clupanodonic acid
	{trigger: "dpa", token: "22:5", exact: true},
	{trigger: "docosahexen", token: "22:6"},
	{trigger: "docosahexaen", token: "22:6"},
	{trigger: "dha", token: "22:6", exact: true},
	{trigger: "tricosan", token: "23:0"},
	{trigger: "tricosen", token: "23:1"},
	{trigger: "tricosadien", token: "23:2"},
	{trigger: "tricosatrien", token: "23:3"},
	{trigger: "tricosatetraen", token: "23:4"},
	{trigger: "tricosapentaen", token: "23:5"},
	{trigger: "tricosapenten", token: "23:5"},
	{trigger: "tricosahexaen", token: "23:6"},
	{trigger: "tricosahexen", token: "23:6"},
	{trigger: "tricosaheptaen", token: "23:7"},
	{trigger: "tricosahepten", token: "23:7"},
	{trigger: "tetracosanoic", token: "24:0"},
	{trigger: "tetracosanoyl", token: "24:0"},
	{trigger: "lignocer", token: "24:0"},
	{trigger: "tetracosen", token: "24:1"},
	{trigger: "nervon", token: "24:1"},
	{trigger: "tetracosadien", token: "24:2"},
	{trigger: "tetracosatrien", token: "24:3"},
	{trigger: "tetracosatetraen", token: "24:4"},
	{trigger: "tetracosapentaen", token: "24:5"},
	{trigger: "tetracosapenten", token: "24:5"},
	{trigger: "tetracosahexaen", token: "24:6"},
	{trigger: "tetracosahexen", token: "24:6"},
	{trigger: "tha", token: "24:6", exact: true},
	{trigger: "tetracosaheptaen", token: "24:7"},
	{trigger: "tetracosahepten", token: "24:7"},
	{trigger: "pentacosan", token: "25:0"},
	{trigger: "pentacosen", token: "25:1"},
	{trigger: "pentacosadien", token: "25:2"},
	{trigger: "pentacosatrien", token: "25:3"},
	{trigger: "pentacosatetraen", token: "25:4"},
	{trigger: "pentacosapentaen", token: "25:5"},
	{trigger: "pentacosapenten", token: "25:5"},
	{trigger: "pentacosahexaen", token: "25:6"},
	{trigger: "pentacosahexen", token: "25:6"},
	{trigger: "pentacosaheptaen", token: "25:7"},
	{trigger: "pentacosahepten", token: "25:7"},
	{trigger: "hexacosan", token: "26:0"},
	{trigger: "cerot", token: "26:0"}, // cerotic acid
	{trigger: "hexacosen", token: "26:1"},
	{trigger: "hexacosadien", token: "26:2"},
	{trigger: "hexacosatrien", token: "26:3"},
	{trigger: "hexacosatetraen", token: "26:4"},
	{trigger: "hexacosapentaen", token: "26:5"},
	{trigger: "hexacosapenten", token: "26:5"},
	{trigger: "hexacosahexaen", token: "26:6"},
	{trigger: "hexacosahexen", token: "26:6"},
	{trigger: "hexacosaheptaen", token: "26:7"},
	{trigger: "hexacosahepten", token: "26:7"},
	{trigger: "heptacosanoic", token: "27:0"},
	{trigger: "heptacosanoyl", token: "27:0"},
	{trigger: "carboceric", token: "27:0"},
	{trigger: "heptacosen", token: "27:1"},
	{trigger: "heptacosadien", token: "27:2"},
	{trigger: "heptacosatrien", token: "27:3"},
	{trigger: "heptacosatetraen", token: "27:4"},
	{trigger: "heptacosatetren", token: "27:4"},
	{trigger: "heptacosapentaen", token: "27:5"},
	{trigger: "heptacosapenten", token: "27:5"},
	{trigger: "heptacosahexaen", token: "27:6"},
	{trigger: "heptacosahexten", token: "27:6"},
	{trigger: "heptacosaheptaen", token: "27:7"},
	{trigger: "heptacosahepten", token: "27:7"},
	{trigger: "octacosan", token: "28:0"},
	{trigger: "montan", token: "28:0"}, // montanic acid
	{trigger: "octacosen", token: "28:1"},
	{trigger: "octacosadien", token: "28:2"},
	{trigger: "octacosatrien", token: "28:3"},
	{trigger: "octacosatetraen", token: "28:4"},
	{trigger: "octacosapentaen", token: "28:5"},
	{trigger: "octacosapenten", token: "28:5"},
	{trigger: "octacosahexaen", token: "28:6"},
	{trigger: "octacosahexen", token: "28:6"},
	{trigger: "octacosaheptaen", token: "28:7"},
	{trigger: "octacosahepten", token: "28:7"},
	{trigger: "octacosaoctaen", token: "28:8"},
	{trigger: "nonacosan", token: "29:0"},
	{trigger: "nonacosen", token: "29:1"},
	{trigger: "nonacosadien", token: "29:2"},
	{trigger: "nonacosatrien", token: "29:3"},
	{trigger: "nonacosatetraen", token: "29:4"},
	{trigger: "nonacosapentaen", token: "29:5"},
	{trigger: "nonacosapenten", token: "29:5"},
	{trigger: "nonacosahexaen", token: "29:6"},
	{trigger: "nonacosahexen", token: "29:6"},
	{trigger: "nonacosaheptaen", token: "29:7"},
	{trigger: "nonacosahepten", token: "29:7"},
	{trigger: "triacontan", token: "30:0"},
	{trigger: "melissic", token: "30:0"},
	{trigger: "triaconten", token: "30:1"},
	{trigger: "triacontadien", token: "30:2"},
	{trigger: "triacontatrien", token: "30:3"},
	{trigger: "triacontatetraen", token: "30:4"},
	{trigger: "triacontapentaen", token: "30:5"},
	{trigger: "triacontapenten", token: "30:5"},
	{trigger: "triacontahexaen", token: "30:6"},
	{trigger: "triacontahexen", token: "30:6"},
	{trigger: "triacontaheptaen", token: "30:7"},
	{trigger: "triacontahepten", token: "30:7"},
	{trigger: "hentriacontan", token: "31:0"},
	{trigger: "hentriaconten", token: "31:1"},
	{trigger: "hentriacontaen", token: "31:1"},
	{trigger: "hentriacontadien", token: "31:2"},
	{trigger: "hentriacontatrien", token: "31:3"},
	{trigger: "hentriacontatetraen", token: "31:4"},
	{trigger: "hentriacontapentaen", token: "31:5"},
	{trigger: "hentriacontapenten", token: "31:5"},
	{trigger: "hentriacontahexaen", token: "31:6"},
	{trigger: "hentriacontahexen", token: "31:6"},
	{trigger: "hentriacontaheptaen", token: "31:7"},
	{trigger: "hentriacontahepten", token: "31:7"},
	{trigger: "lacceroic", token: "32:0"}, // dotriacontanoic acid
	{trigger: "dotriacontan", token: "32:0"},
	{trigger: "dotriaconten", token: "32:1"},
	{trigger: "dotriacontadien", token: "32:2"},
	{trigger: "dotriacontatrien", token: "32:3"},
	{trigger: "dotriacontatetraen", token: "32:4"},
	{trigger: "dotriacontapentaen", token: "32:5"},
	{trigger: "dotriacontapenten", token: "32:5"},
	{trigger: "dotriacontahexaen", token: "32:6"},
	{trigger: "dotriacontahexen", token: "32:6"},
	{trigger: "dotriacontaheptaen", token: "32:7"},
	{trigger: "dotriacontahepten", token: "32:7"},
	{trigger: "tritriacontan", token: "33:0"},
	{trigger: "psyllic", token: "33:0"},
	// no FA(33:1)
	{trigger: "tritriacontadien", token: "33:2"},
	{trigger: "tritriacontatrien", token: "33:3"},
	{trigger: "tritriacontatetraen", token: "33:4"},
	{trigger: "tritriacontapentaen", token: "33:5"},
	{trigger: "tritriacontapenten", token: "33:5"},
	{trigger: "tritriacontahexaen", token: "33:6"},
	{trigger: "tritriacontahexen", token: "33:6"},
	{trigger: "tritriacontaheptaen", token: "33:7"},
	{trigger: "tritriacontahepten", token: "33:7"},
	{trigger: "tetratriacontan", token: "34:0"},
	{trigger: "gheddic", token: "34:0"},
	{trigger: "tetratriaconten", token: "34:1"},
	{trigger: "tetratriacontadien", token: "34:2"},
	{trigger: "tetratriacontatrien", token: "34:3"},
	{trigger: "tetratriacontatetraen", token: "34:4"},
	{trigger: "tetratriacontapentaen", token: "34:5"},
	{trigger: "tetratriacontapenten", token: "34:5"},
	{trigger: "tetratriacontahexaen", token: "34:6"},
	{trigger: "tetratriacontahexen", token: "34:6"},
	{trigger: "tetratriacontaheptaen", token: "34:7"},
	{trigger: "tetratriacontahepten", token: "34:7"},
	{trigger: "ceroplastic", token: "35:0"},
	{trigger: "pentatriacontan", token: "35:0"},
	{trigger: "hexatriacontylic", token: "36:0"},
	{trigger: "hexatriacontan", token: "36:0"},
	{trigger: "octatriacontan", token: "38:0"},
	{trigger: "hexatetracontan", token: "46:0"},

	// generic fragments, deliberately last: each is a substring of many of
	// the longer chain names above and must only fire once those have failed
	{trigger: "caproic", token: "6:0"},
	{trigger: "octan", token: "8:0"}, // must come after every other *octan*
	{trigger: "caprylic", token: "8:0"},
	{trigger: "capryloyl", token: "8:0"},
	{trigger: "octen", token: "8:1"},
	{trigger: "octaen", token: "8:1"},
	{trigger: "octadien", token: "8:2"},
	{trigger: "decan", token: "10:0"}, // must come after every other *decan*
	{trigger: "decen", token: "10:1"},
	{trigger: "decadien", token: "10:2"},
	{trigger: "decatrien", token: "10:3"},
	{trigger: "decatetraen", token: "10:4"},
	{trigger: "stear", token: "18:0"}, // stearic acid
	{trigger: "olei", token: "18:1"},  // C18:1 cis(n9)
	{trigger: "olea", token: "18:1"},
	{trigger: "oleo", token: "18:1"},
	{trigger: "oley", token: "18:1"},
	{trigger: "elaid", token: "18:1"}, // C18:1 trans(n9)
	{trigger: "linol", token: "18:2"}, // linoleic acid
	{trigger: "eicosan", token: "20:0"},
	{trigger: "docosan", token: "22:0"},
}

// lookupNamedAcid resolves a trivial fatty-acid name (e.g. "oleic",
// "palmitic") to its residue token by walking the ordered trigger table.
// Returns ([], 0) when nothing matches. Matches are never ambiguous, so the
// dividend is always 1.
func lookupNamedAcid(name string) ([]string, int) {
	name = strings.ToLower(name)
	for _, rule := range namedAcidRules {
		if rule.exact {
			if name == rule.trigger {
				return []string{rule.token}, 1
			}
			continue
		}
		if strings.Contains(name, rule.trigger) {
			return []string{rule.token}, 1
		}
	}
	return nil, 0
}
