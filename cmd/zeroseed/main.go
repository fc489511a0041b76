// Command zeroseed reports rng16 generators seeded with a constant zero.
//
//	go run github.com/soypat/rng16/cmd/zeroseed ./...
package main

import (
	"github.com/soypat/rng16/lint/zeroseed"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() { singlechecker.Main(zeroseed.Analyzer) }
