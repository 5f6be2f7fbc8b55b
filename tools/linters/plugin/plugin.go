// Package main exposes the project analyzers as a golangci-lint plugin.
package main

import (
	"golang.org/x/tools/go/analysis"

	"cardtracker.app/api/tools/linters/enumvalidator"
)

type AnalyzerPlugin struct{}

func (*AnalyzerPlugin) GetAnalyzers() []*analysis.Analyzer {
	return analyzers()
}

func New(any) ([]*analysis.Analyzer, error) {
	return analyzers(), nil
}

func analyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{enumvalidator.Analyzer}
}

// main is unused when built with -buildmode=plugin.
func main() {}
