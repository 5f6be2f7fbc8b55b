package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"cardtracker.app/api/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
