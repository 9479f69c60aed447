// Command pathways assembles LCA matrices from an export directory and
// adjusts the technosphere to a scenario year.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
