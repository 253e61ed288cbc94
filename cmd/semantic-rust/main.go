package main

import (
	"github.com/jihiggins/SemanticMergeRust/internal/cli"
)

func main() {
	cli.Execute()
}
