package quote

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrBadRow is returned for a TSV row that cannot be turned into an Entry.
var ErrBadRow = errors.New("quote: bad row")

// Entry is one cleaned row of a quote corpus.
type Entry struct {
	Key    uint32
	Hour   int
	Min    int
	Sec    int
	Marker string
	Text   string
	Title  string
	Author string
}

// Time returns the entry time as "hh:mm:ss".
func (e Entry) Time() string {
	return fmt.Sprintf("%02d:%02d:%02d", e.Hour, e.Min, e.Sec)
}

// substitutes maps common typographic runes to ASCII.
var substitutes = map[rune]string{
	'‘': "'", '’': "'", '‚': "'", '‛': "'", '′': "'",
	'“': "'", '”': "'", '„': "'", '«': "'", '»': "'",
	'‐': "-", '‑': "-", '‒': "-", '–': "-", '—': "-", '―': "-",
	'…': "...",
	'ß': "ss", 'æ': "ae", 'Æ': "AE", 'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",

	'\u00a0': " ",
}

// fold strips diacritics so "café" becomes "cafe".
var fold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// cleanText reduces s to printable ASCII. It reports the runes that had no
// ASCII substitute; those become spaces.
func cleanText(s string) (string, []rune) {
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	var (
		sb      strings.Builder
		unknown []rune
	)
	for _, r := range s {
		switch {
		case r == '"':
			sb.WriteByte('\'')
		case r >= ' ' && r <= '~':
			sb.WriteRune(r)
		case r == '\r' || r == '\n':
		default:
			if sub, ok := substitutes[r]; ok {
				sb.WriteString(sub)
				continue
			}
			unknown = append(unknown, r)
			sb.WriteByte(' ')
		}
	}
	return sb.String(), unknown
}

func parseTime(s string) (h, m, sec int, err error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("time %q: want hh:mm:ss", s)
	}
	var v [3]int
	for i, p := range parts {
		if len(p) != 2 {
			return 0, 0, 0, fmt.Errorf("time %q: want two digit fields", s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("time %q: %v", s, err)
		}
		v[i] = n
	}
	if v[0] > 23 || v[1] > 59 || v[2] > 59 || v[0] < 0 || v[1] < 0 || v[2] < 0 {
		return 0, 0, 0, fmt.Errorf("time %q out of range", s)
	}
	return v[0], v[1], v[2], nil
}

// ParseTSV reads a quote corpus with one quote per line, either
//
//	hh:mm:ss<TAB>text<TAB>title<TAB>author
//	hh:mm:ss<TAB>marker<TAB>text<TAB>title<TAB>author
//
// where marker is the phrase in text that tells the time. '.' is accepted as
// the time separator. Blank lines and lines starting with '#' are skipped.
// Text is reduced to printable ASCII with double quotes turned into single
// ones. Non-fatal problems (unknown characters, markers missing from their
// text) are returned as warnings.
func ParseTSV(r io.Reader) ([]Entry, []string, error) {
	var (
		entries  []Entry
		warnings []string
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	row := 0
	for sc.Scan() {
		row++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		var e Entry
		switch len(fields) {
		case 4:
			e.Text, e.Title, e.Author = fields[1], fields[2], fields[3]
		case 5:
			e.Marker, e.Text, e.Title, e.Author = fields[1], fields[2], fields[3], fields[4]
		default:
			return nil, warnings, fmt.Errorf("%w: row %d: %d fields, want 4 or 5", ErrBadRow, row, len(fields))
		}
		h, m, s, err := parseTime(fields[0])
		if err != nil {
			return nil, warnings, fmt.Errorf("%w: row %d: %v", ErrBadRow, row, err)
		}
		e.Hour, e.Min, e.Sec = h, m, s
		e.Key = uint32(h*60 + m)

		var unknown []rune
		e.Text, unknown = cleanText(e.Text)
		if len(unknown) > 0 {
			warnings = append(warnings, fmt.Sprintf("row %d: unknown characters %q replaced with space", row, string(unknown)))
		}
		e.Title, _ = cleanText(e.Title)
		e.Author, _ = cleanText(e.Author)
		e.Marker, _ = cleanText(e.Marker)
		if e.Text == "" {
			return nil, warnings, fmt.Errorf("%w: row %d: empty text", ErrBadRow, row)
		}
		if e.Marker != "" && !strings.Contains(strings.ToUpper(e.Text), strings.ToUpper(e.Marker)) {
			warnings = append(warnings, fmt.Sprintf("row %d: marker [%s] not in text", row, e.Marker))
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, warnings, err
	}
	return entries, warnings, nil
}

// WriteTSV writes entries in the four column form ParseTSV reads, with the
// marker column when any entry has one.
func WriteTSV(w io.Writer, entries []Entry) error {
	withMarker := false
	for _, e := range entries {
		if e.Marker != "" {
			withMarker = true
			break
		}
	}
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if withMarker {
			fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%s\n", e.Time(), e.Marker, e.Text, e.Title, e.Author)
		} else {
			fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n", e.Time(), e.Text, e.Title, e.Author)
		}
	}
	return bw.Flush()
}

// Pack builds an asset stack from entries. Assets are ordered by key; when
// several entries share a key the first one wins. Texts longer than
// MaxTextLen are packed but will never be served.
func Pack(entries []Entry) AssetStack {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	var s AssetStack
	seen := make(map[uint32]bool, len(sorted))
	for _, e := range sorted {
		if seen[e.Key] {
			continue
		}
		seen[e.Key] = true
		s.Assets = append(s.Assets, Asset{Key: e.Key, Index: uint32(len(s.Text))})
		s.Text = append(s.Text, e.Text...)
		s.Text = append(s.Text, 0)
	}
	s.Quantity = uint16(len(s.Assets))
	s.MaxIndex = uint32(len(s.Text))
	return s
}
