// Command genvariants writes the per-variant generator types of package rng16.
//
// Every tag is three hex digits a, b, c naming the xorshift recipe
//
//	x ^= x << a
//	x ^= x >> b
//	x ^= x << c
//
// Only triples verified to have period 2^16-1 belong in the tag list.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strconv"
	"strings"
	"text/template"
)

// tags lists the full period shift triples in catalogue order.
var tags = []string{
	"11e", "11f", "152", "174", "17b", "1b3", "1f6", "1f7", "251", "25d",
	"25f", "27d", "27f", "31c", "31f", "35b", "3b1", "3bb", "3d9", "437",
	"471", "4bb", "57e", "598", "5b6", "5bb", "67d", "6b5", "6f1", "71b",
	"734", "798", "79d", "7f1", "895", "897", "97d", "9d3", "b17", "b3d",
	"b53", "b71", "bb3", "bb4", "bb5", "c13", "d3b", "c3d", "d3c", "d52",
	"d72", "d76", "d79", "d97", "e11", "e75", "f11", "f13", "f52", "f72",
}

type variant struct {
	Tag     string // lower case tag, i.e: "b71".
	Name    string // upper case tag, i.e: "B71".
	A, B, C int
}

func main() {
	output := flag.String("o", "xor16_gen.go", "output file")
	flag.Parse()
	variants := make([]variant, len(tags))
	for i, tag := range tags {
		v, err := parseTag(tag)
		if err != nil {
			log.Fatal(err)
		}
		variants[i] = v
	}
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, variants)
	if err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("formatting generated source: %v\n%s", err, buf.Bytes())
	}
	err = os.WriteFile(*output, src, 0o644)
	if err != nil {
		log.Fatal(err)
	}
}

func parseTag(tag string) (v variant, err error) {
	if len(tag) != 3 {
		return v, fmt.Errorf("tag %q must be three hex digits", tag)
	}
	var shifts [3]int
	for i := range shifts {
		s, err := strconv.ParseUint(tag[i:i+1], 16, 4)
		if err != nil {
			return v, fmt.Errorf("tag %q: %w", tag, err)
		} else if s == 0 {
			return v, fmt.Errorf("tag %q: zero shift", tag)
		}
		shifts[i] = int(s)
	}
	return variant{
		Tag:  tag,
		Name: strings.ToUpper(tag),
		A:    shifts[0],
		B:    shifts[1],
		C:    shifts[2],
	}, nil
}

var tmpl = template.Must(template.New("variants").Parse(`// Code generated by genvariants; DO NOT EDIT.

package rng16

// Full period generator variants, named by their shift triple.
const (
{{- range $i, $v := . }}
	Variant{{ $v.Name }}{{ if eq $i 0 }} Variant = iota + 1{{ end }}
{{- end }}
	variantEnd
)

var variantTags = [...]string{
{{- range . }}
	Variant{{ .Name }}: "{{ .Tag }}",
{{- end }}
}

// Step returns the state following x for the variant. It returns 0 for an invalid variant.
func (v Variant) Step(x uint16) uint16 {
	switch v {
{{- range . }}
	case Variant{{ .Name }}:
		return step{{ .Name }}(x)
{{- end }}
	}
	return 0
}

// New returns a new unseeded generator for the variant. It returns nil for an invalid variant.
func (v Variant) New() Generator {
	switch v {
{{- range . }}
	case Variant{{ .Name }}:
		return new(Xor{{ .Name }})
{{- end }}
	}
	return nil
}
{{ range . }}
// Xor{{ .Name }} is the full period 16-bit xorshift generator {{ .Tag }} with shift triple ({{ .A }}, {{ .B }}, {{ .C }}).
// The zero value is unseeded.
type Xor{{ .Name }} struct {
	state uint16
}

// Seed sets the state of the generator to seed and reports whether seed was accepted.
// A zero seed is rejected and leaves the state unchanged.
func (r *Xor{{ .Name }}) Seed(seed uint16) bool { return seedState(&r.state, seed) }

// Next advances the generator and returns the new state.
func (r *Xor{{ .Name }}) Next() uint16 {
	r.state = step{{ .Name }}(r.state)
	return r.state
}

func step{{ .Name }}(x uint16) uint16 {
	x ^= x << {{ .A }}
	x ^= x >> {{ .B }}
	x ^= x << {{ .C }}
	return x
}
{{ end -}}
`))
