// logscan - Log Error and Warning Scanner
//
// logscan reads a single log file and reports how many lines contain ERROR
// or WARNING, followed by the matching lines grouped by category.
package main

import (
	"os"

	"github.com/ccollicutt/logscan/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
