// Command quotegen compiles a tab separated quote corpus into a Go asset
// stack for package quotes.
//
//	quotegen -o internal/quotes/corpus.go quotes/quotes.tsv
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/spf13/pflag"

	"litclock/internal/quote"
)

func main() {
	var (
		outPath = pflag.StringP("out", "o", "corpus.go", "Output Go file.")
		pkg     = pflag.StringP("package", "p", "quotes", "Package name of the generated file.")
		name    = pflag.String("var", "Stack", "Name of the generated asset stack.")
		cleaned = pflag.String("cleaned", "", "Also write the cleaned corpus as TSV to this path.")
		verbose = pflag.BoolP("verbose", "v", false, "Print every warning.")
	)
	pflag.Parse()

	if pflag.NArg() != 1 {
		fatalf("usage: quotegen [-o out.go] [-p pkg] [--var Stack] [--cleaned items.tsv] quotes.tsv")
	}
	inPath := pflag.Arg(0)

	in, err := os.Open(inPath)
	if err != nil {
		fatalf("open: %v", err)
	}
	entries, warnings, err := quote.ParseTSV(in)
	in.Close()
	if err != nil {
		fatalf("%s: %v", inPath, err)
	}
	if *verbose {
		for _, w := range warnings {
			fmt.Println(w)
		}
	}
	fmt.Printf("%d items found, %d warnings\n", len(entries), len(warnings))

	if *cleaned != "" {
		if err := writeCleaned(*cleaned, entries); err != nil {
			fatalf("cleaned: %v", err)
		}
	}

	stack := quote.Pack(entries)
	if err := stack.Validate(); err != nil {
		fatalf("pack: %v", err)
	}

	src, err := generate(*pkg, *name, filepath.ToSlash(inPath), entries, stack)
	if err != nil {
		fatalf("generate: %v", err)
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		fatalf("write: %v", err)
	}
	fmt.Printf("%d quotes, %d bytes -> %s\n", stack.Quantity, stack.MaxIndex, *outPath)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func writeCleaned(path string, entries []quote.Entry) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := quote.WriteTSV(out, entries); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

type item struct {
	Asset quote.Asset
	Time  string
	Text  string
}

func generate(pkg, name, origin string, entries []quote.Entry, stack quote.AssetStack) ([]byte, error) {
	times := make(map[uint32]string, len(entries))
	for _, e := range entries {
		if _, ok := times[e.Key]; !ok {
			times[e.Key] = fmt.Sprintf("%02d:%02d", e.Hour, e.Min)
		}
	}

	items := make([]item, len(stack.Assets))
	for i, a := range stack.Assets {
		end := bytes.IndexByte(stack.Text[a.Index:], 0)
		items[i] = item{
			Asset: a,
			Time:  times[a.Key],
			Text:  strconv.Quote(string(stack.Text[a.Index : int(a.Index)+end+1])),
		}
	}

	var buf bytes.Buffer
	err := goTemplate.Execute(&buf, struct {
		Package string
		Origin  string
		Name    string
		Stack   quote.AssetStack
		Items   []item
	}{pkg, origin, name, stack, items})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

var goTemplate = template.Must(template.New("quotes").Parse(`// Code generated by quotegen from {{.Origin}}; DO NOT EDIT.

package {{.Package}}

import "litclock/internal/quote"

// {{.Name}} holds {{.Stack.Quantity}} quotes in {{.Stack.MaxIndex}} bytes.
var {{.Name}} = quote.AssetStack{
	Text: []byte(text),
	Assets: assets,
	Quantity: {{.Stack.Quantity}},
	MaxIndex: {{.Stack.MaxIndex}},
}

var assets = []quote.Asset{
{{- range .Items}}
	{Key: {{.Asset.Key}}, Index: {{.Asset.Index}}}, // {{.Time}}
{{- end}}
}

const text = "" +
{{- range $i, $it := .Items}}{{if $i}} +{{end}}
	{{$it.Text}}
{{- end}}
`))
