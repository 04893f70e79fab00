package main

import (
	"fmt"
	"os"

	"github.com/iburimskiy/weightdial/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "weightdial:", err)
		os.Exit(1)
	}
}
