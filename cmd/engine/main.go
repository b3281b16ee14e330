// Command engine is the non-UCI front end: perft counting, search
// benchmarking, and static-eval tracing over the position/engine packages.
package main

import (
	"os"

	"chess-engine/cmd/engine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
