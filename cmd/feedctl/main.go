// Command feedctl inspects the feed registry and runs aggregations from the
// terminal without starting the API server.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
