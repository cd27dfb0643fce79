// Command fontgen compiles BDF bitmap fonts into Go font tables for package
// fonts. It can also rasterize a built-in face into a BDF file.
//
//	fontgen -o internal/fonts fonts/basic7x13.bdf
//	fontgen --face basic7x13 --scale 8 --last : --emit bdf -o fonts
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/spf13/pflag"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"litclock/internal/bdf"
	litfont "litclock/internal/font"
)

var faces = map[string]font.Face{
	"basic7x13": basicfont.Face7x13,
}

func main() {
	var (
		outDir  = pflag.StringP("out", "o", ".", "Output directory.")
		pkg     = pflag.StringP("package", "p", "fonts", "Package name of generated Go files.")
		emit    = pflag.String("emit", "go", "go|bdf.")
		face    = pflag.String("face", "", "Built-in face to rasterize instead of reading BDF files (basic7x13).")
		scale   = pflag.Int("scale", 1, "Pixel scale for --face.")
		first   = pflag.String("first", " ", "First character for --face.")
		last    = pflag.String("last", "~", "Last character for --face.")
		tag     = pflag.String("tag", "", "Font tag for --face (default: face name, with xN suffix when scaled).")
		verbose = pflag.BoolP("verbose", "v", false, "Print a summary of every compiled font.")
	)
	pflag.Parse()

	if *emit != "go" && *emit != "bdf" {
		fatalf("unknown --emit: %s", *emit)
	}

	var sources []source
	if *face != "" {
		s, err := fromFace(*face, *tag, *first, *last, *scale)
		if err != nil {
			fatalf("face: %v", err)
		}
		sources = append(sources, s)
	}
	for _, path := range pflag.Args() {
		s, err := fromFile(path)
		if err != nil {
			fatalf("%s: %v", path, err)
		}
		sources = append(sources, s)
	}
	if len(sources) == 0 {
		fatalf("usage: fontgen [-o dir] [-p pkg] FILE.bdf...\n       fontgen --face basic7x13 [--scale N] [--first c] [--last c] [--emit go|bdf] [-o dir]")
	}

	for _, s := range sources {
		var (
			path string
			err  error
		)
		switch *emit {
		case "bdf":
			path = filepath.Join(*outDir, s.tag+".bdf")
			err = writeBDF(path, s)
		default:
			path = filepath.Join(*outDir, s.tag+".go")
			err = writeGo(path, *pkg, s, *verbose)
		}
		if err != nil {
			fatalf("%s: %v", s.tag, err)
		}
		fmt.Printf("%s -> %s\n", s.origin, path)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

type source struct {
	tag    string
	origin string
	font   *bdf.Font
}

func fromFile(path string) (source, error) {
	f, err := os.Open(path)
	if err != nil {
		return source{}, err
	}
	defer f.Close()

	parsed, err := bdf.Parse(f)
	if err != nil {
		return source{}, err
	}
	tag := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return source{tag: tag, origin: filepath.ToSlash(path), font: parsed}, nil
}

func fromFace(name, tag, first, last string, scale int) (source, error) {
	face, ok := faces[name]
	if !ok {
		return source{}, fmt.Errorf("unknown face %q", name)
	}
	if len(first) != 1 || len(last) != 1 {
		return source{}, fmt.Errorf("--first and --last take a single character")
	}
	if tag == "" {
		tag = name
		if scale > 1 {
			tag = fmt.Sprintf("%sx%d", name, scale)
		}
	}
	f, err := bdf.FromFace(face, tag, rune(first[0]), rune(last[0]), scale)
	if err != nil {
		return source{}, err
	}
	return source{tag: tag, origin: "face " + name, font: f}, nil
}

func writeBDF(path string, s source) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bdf.Write(out, s.font); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeGo(path, pkg string, s source, verbose bool) error {
	compiled, sum, err := bdf.Compile(s.font, s.tag)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Println(sum)
	}

	var buf bytes.Buffer
	err = goTemplate.Execute(&buf, goData{
		Package: pkg,
		Origin:  s.origin,
		Ident:   identifier(s.tag),
		Font:    compiled,
		Summary: strings.Split(sum.String(), "\n"),
	})
	if err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return os.WriteFile(path, src, 0o644)
}

// identifier turns a font tag into an exported Go name: "basic7x13x8"
// becomes "Basic7x13x8".
func identifier(tag string) string {
	var sb strings.Builder
	upper := true
	for _, r := range tag {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	name := sb.String()
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		name = "Font" + name
	}
	return name
}

type goData struct {
	Package string
	Origin  string
	Ident   string
	Font    *litfont.BdfFont
	Summary []string
}

func (d goData) Rows() [][]byte {
	var rows [][]byte
	b := d.Font.Bitmaps
	for len(b) > 0 {
		n := min(len(b), 12)
		rows = append(rows, b[:n])
		b = b[n:]
	}
	return rows
}

func charComment(c int) string {
	if c == '\'' || c == '\\' {
		return fmt.Sprintf("'\\%c'", c)
	}
	return fmt.Sprintf("'%c'", c)
}

var goTemplate = template.Must(template.New("font").Funcs(template.FuncMap{
	"char": func(start uint8, i int) string { return charComment(int(start) + i) },
	"lower": func(s string) string {
		return strings.ToLower(s[:1]) + s[1:]
	},
}).Parse(`// Code generated by fontgen from {{.Origin}}; DO NOT EDIT.

package {{.Package}}

import "litclock/internal/font"

{{- $lower := lower .Ident}}

// {{.Ident}} is the "{{.Font.Name}}" font.
//
{{- range .Summary}}
//	{{.}}
{{- end}}
var {{.Ident}} = &font.BdfFont{
	Name: "{{.Font.Name}}",
	Bitmaps: {{$lower}}Bitmaps,
	Glyphs: {{$lower}}Glyphs,
	AsciiStart: {{.Font.AsciiStart}},
	AsciiStop: {{.Font.AsciiStop}},
	VerticalStep: {{.Font.VerticalStep}},
}

var {{$lower}}Glyphs = []font.BdfGlyph{
{{- $start := .Font.AsciiStart}}
{{- range $i, $g := .Font.Glyphs}}
	{Index: {{$g.Index}}, BBW: {{$g.BBW}}, BBH: {{$g.BBH}}, DWidth: {{$g.DWidth}}, BBX: {{$g.BBX}}, BBY: {{$g.BBY}}}, // {{char $start $i}}
{{- end}}
}

var {{$lower}}Bitmaps = []byte{
{{- range .Rows}}
	{{range .}}{{printf "0x%02X" .}}, {{end}}
{{- end}}
}
`))
