// Package refmet handles the RefMet reference compound list: the published
// table of compound names, exact masses and main classes used as an
// optional side table next to residue extraction.
package refmet

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// DefaultURL is the published RefMet compound list.
const DefaultURL = "https://www.metabolomicsworkbench.org/databases/refmet/refmet_latest.xlsx"

// Compound is one reference list entry.
type Compound struct {
	Name      string
	ExactMass float64
	MainClass string
}

// DefaultSkipClasses lists main classes whose names trip up residue
// matching and are removed when filtering the reference list.
func DefaultSkipClasses() []string {
	return []string{"Disaccharides", "Steroids"}
}

var residueToken = regexp.MustCompile(`\d+:\d+`)

// LoadCSV reads a tab-delimited export of the reference list. The header
// row must contain the name, exactmass and main_class columns (extra
// columns, such as a leading index, are ignored). An empty mass cell is
// kept as zero; any other non-numeric mass is an error.
func LoadCSV(r io.Reader) ([]Compound, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading reference list: %w", err)
		}
		return nil, fmt.Errorf("empty input: expected a header row")
	}

	nameCol, massCol, classCol := -1, -1, -1
	for i, col := range strings.Split(scanner.Text(), "\t") {
		switch strings.TrimSpace(col) {
		case "name":
			nameCol = i
		case "exactmass":
			massCol = i
		case "main_class":
			classCol = i
		}
	}
	if nameCol == -1 || massCol == -1 || classCol == -1 {
		return nil, fmt.Errorf("header must contain name, exactmass and main_class columns")
	}

	var compounds []Compound
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) <= nameCol || len(fields) <= massCol || len(fields) <= classCol {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", lineNum, classCol+1, len(fields))
		}

		c := Compound{
			Name:      strings.TrimSpace(fields[nameCol]),
			MainClass: strings.TrimSpace(fields[classCol]),
		}
		massStr := strings.TrimSpace(fields[massCol])
		if massStr != "" {
			mass, err := strconv.ParseFloat(massStr, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid mass value %q: %w", lineNum, massStr, err)
			}
			c.ExactMass = mass
		}
		compounds = append(compounds, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading reference list: %w", err)
	}

	return compounds, nil
}

// Filter keeps compounds whose name carries a residue token and whose main
// class is not in the skip list. This mirrors the preprocessing applied to
// published list releases before they are shipped as a side table.
func Filter(compounds []Compound, skipClasses []string) []Compound {
	skip := make(map[string]bool, len(skipClasses))
	for _, class := range skipClasses {
		skip[class] = true
	}

	out := make([]Compound, 0, len(compounds))
	for _, c := range compounds {
		if skip[c.MainClass] {
			continue
		}
		if !residueToken.MatchString(c.Name) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FattyClasses returns the set of main classes that describe fatty
// compounds, matched case-insensitively on the "fatt" fragment.
func FattyClasses(compounds []Compound) map[string]bool {
	classes := make(map[string]bool)
	for _, c := range compounds {
		if strings.Contains(strings.ToLower(c.MainClass), "fatt") {
			classes[c.MainClass] = true
		}
	}
	return classes
}

// Fetch downloads the published compound list to a local file.
func Fetch(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch reference list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch reference list: %s returned %s", url, resp.Status)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to save reference list: %w", err)
	}
	return nil
}
