package main

import (
	"fmt"
	"os"

	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
