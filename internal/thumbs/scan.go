package thumbs

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Wrap splits captured text into lines no wider than width display
// columns. Lines are numbered in order starting at 0.
//
// Wrapping is disabled if width is not positive.
func Wrap(text string, width int) []Line {
	text = strings.TrimSuffix(text, "\n")

	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		for _, chunk := range wrapLine(raw, width) {
			lines = append(lines, Line{Row: len(lines), Text: chunk})
		}
	}
	return lines
}

func wrapLine(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}

	var (
		chunks []string
		start  int // byte offset of the current chunk
		cur    int // display width of the current chunk
	)
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		from, _ := g.Positions()
		w := runewidth.StringWidth(g.Str())
		if cur > 0 && cur+w > width {
			chunks = append(chunks, s[start:from])
			start, cur = from, 0
		}
		cur += w
	}
	return append(chunks, s[start:])
}

// Detector finds one kind of interesting text.
type Detector struct {
	// Name identifies the detector. Matches record it in Match.Pattern.
	Name string

	// Regexp matching the text. If it has capture groups, the first
	// group is the matched text, but the full match is consumed.
	Regexp *regexp.Regexp

	// Skip consumes matched text without reporting it.
	// This keeps noise like color escape codes from being matched by
	// lower priority detectors.
	Skip bool
}

func (d Detector) String() string {
	return fmt.Sprintf("%v:%v", d.Name, d.Regexp)
}

var errEmptyPattern = errors.New("pattern matches empty text")

// CompileDetector builds a Detector with the provided name and regular
// expression. Expressions that match empty text are rejected.
func CompileDetector(name, pattern string) (Detector, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Detector{}, err
	}
	if re.MatchString("") {
		return Detector{}, errEmptyPattern
	}
	return Detector{Name: name, Regexp: re}, nil
}

// Detector sets are in priority order: if two detectors match at the same
// position, the earlier one wins.
var (
	_exclusions = []Detector{
		{Name: "ansi", Regexp: regexp.MustCompile(`[\x00-\x1F\x7F]\[([0-9]{1,2};)?([0-9]{1,2})?m`), Skip: true},
	}

	_builtins = []Detector{
		{Name: "markdown_url", Regexp: regexp.MustCompile(`\[[^]]*\]\(([^)]+)\)`)},
		{Name: "url", Regexp: regexp.MustCompile(`((https?://|git@|git://|ssh://|ftp://|file:///)[^ ]+)`)},
		{Name: "diff_a", Regexp: regexp.MustCompile(`--- a/([^ ]+)`)},
		{Name: "diff_b", Regexp: regexp.MustCompile(`\+\+\+ b/([^ ]+)`)},
		{Name: "docker", Regexp: regexp.MustCompile(`sha256:([0-9a-f]{64})`)},
		{Name: "path", Regexp: regexp.MustCompile(`(([.\w\-@~]+)?(/[.\w\-@]+)+)`)},
		{Name: "color", Regexp: regexp.MustCompile(`#[0-9a-fA-F]{6}`)},
		{Name: "uuid", Regexp: regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)},
		{Name: "ipfs", Regexp: regexp.MustCompile(`Qm[0-9a-zA-Z]{44}`)},
		{Name: "sha", Regexp: regexp.MustCompile(`[0-9a-f]{7,40}`)},
		{Name: "ipv4", Regexp: regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)},
		{Name: "ipv6", Regexp: regexp.MustCompile(`[A-f0-9:]+:+[A-f0-9:]+[%\w\d]+`)},
		{Name: "address", Regexp: regexp.MustCompile(`0x[0-9a-fA-F]+`)},
		{Name: "number", Regexp: regexp.MustCompile(`[0-9]{4,}`)},
	}
)

// DefaultDetectors returns the built-in detectors in priority order,
// exclusions first.
func DefaultDetectors() []Detector {
	ds := make([]Detector, 0, len(_exclusions)+len(_builtins))
	ds = append(ds, _exclusions...)
	return append(ds, _builtins...)
}

// WithCustom returns a copy of the detector list with custom detectors
// applied.
//
// A custom detector with the same name as an existing one replaces it in
// place. A nil Regexp removes the existing detector. New detectors are
// placed ahead of all non-skip detectors, in the order given.
func WithCustom(ds []Detector, custom []Detector) []Detector {
	out := append([]Detector(nil), ds...)

	var added []Detector
	for _, c := range custom {
		idx := -1
		for i, d := range out {
			if d.Name == c.Name {
				idx = i
				break
			}
		}

		switch {
		case idx >= 0 && c.Regexp == nil:
			out = append(out[:idx], out[idx+1:]...)
		case idx >= 0:
			out[idx] = c
		case c.Regexp != nil:
			added = append(added, c)
		}
	}

	if len(added) == 0 {
		return out
	}

	// Exclusions stay ahead of everything.
	split := 0
	for split < len(out) && out[split].Skip {
		split++
	}

	result := make([]Detector, 0, len(out)+len(added))
	result = append(result, out[:split]...)
	result = append(result, added...)
	return append(result, out[split:]...)
}

// Scanner finds matches in lines of text.
type Scanner struct {
	// Detectors in priority order.
	Detectors []Detector
}

// Scan runs the detectors over the provided lines and returns matches in
// scan order: by row, then by column.
//
// Within a line, the leftmost match wins. If several detectors match at
// the same position, the one listed first wins. Scanning resumes after
// the end of the winning match, so matches never overlap.
func (s *Scanner) Scan(lines []Line) []Match {
	var ms []Match
	for _, line := range lines {
		ms = s.scanLine(line, ms)
	}
	return ms
}

// ScanText wraps text at width display columns and scans the result.
// It returns the wrapped lines along with the matches found in them.
func (s *Scanner) ScanText(text string, width int) ([]Line, []Match) {
	lines := Wrap(text, width)
	return lines, s.Scan(lines)
}

func (s *Scanner) scanLine(line Line, ms []Match) []Match {
	text := strings.TrimRightFunc(line.Text, unicode.IsSpace)
	found := make([][][]int, len(s.Detectors))
	for i, d := range s.Detectors {
		if d.Regexp != nil {
			found[i] = d.Regexp.FindAllStringSubmatchIndex(text, -1)
		}
	}

	for offset := 0; offset < len(text); {
		d, loc := s.leftmost(text, offset, found)
		if d == nil {
			break
		}

		offset = loc[1]
		if d.Skip {
			continue
		}

		// Use the first capture group if the detector has one and it
		// participated in the match.
		selStart, selEnd := loc[0], loc[1]
		if len(loc) > 2 && loc[2] >= 0 {
			selStart, selEnd = loc[2], loc[3]
		}
		if selStart == selEnd {
			continue
		}

		ms = append(ms, Match{
			Row:     line.Row,
			Col:     utf8.RuneCountInString(text[:selStart]),
			Text:    text[selStart:selEnd],
			Pattern: d.Name,
		})
	}

	return ms
}

// leftmost finds the earliest non-empty match starting at or after offset
// across all detectors. found holds each detector's matches over the
// whole of text, so anchors and word boundaries see the full line.
// Returned offsets are relative to text.
func (s *Scanner) leftmost(text string, offset int, found [][][]int) (*Detector, []int) {
	var (
		best    *Detector
		bestLoc []int
	)
	for i := range s.Detectors {
		d := &s.Detectors[i]
		if d.Regexp == nil {
			continue
		}

		loc := nextMatch(d, text, offset, found[i])
		if loc == nil {
			continue
		}

		if best == nil || loc[0] < bestLoc[0] {
			best, bestLoc = d, loc
		}
	}
	return best, bestLoc
}

// nextMatch returns the first non-empty match in locs at or after
// offset.
//
// locs never overlap, so a match that began before offset and runs past
// it hides any match that would start inside it. Only then is text
// searched again from offset.
func nextMatch(d *Detector, text string, offset int, locs [][]int) []int {
	for _, loc := range locs {
		switch {
		case loc[0] == loc[1]:
			continue
		case loc[0] >= offset:
			return loc
		case loc[1] > offset:
			loc = d.Regexp.FindStringSubmatchIndex(text[offset:])
			if loc == nil || loc[0] == loc[1] {
				return nil
			}
			for j := range loc {
				if loc[j] >= 0 {
					loc[j] += offset
				}
			}
			return loc
		}
	}
	return nil
}
