// ABOUTME: Entry point for the inference-cost CLI
// ABOUTME: Command-line tool for LLM inference cost analysis

package main

import (
	"fmt"
	"os"

	"github.com/inferlab/inference-cost-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
