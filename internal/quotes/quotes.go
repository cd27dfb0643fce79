// Package quotes holds the compiled-in quote corpus.
package quotes

//go:generate go run ../../cmd/quotegen -o corpus.go ../../quotes/quotes.tsv
