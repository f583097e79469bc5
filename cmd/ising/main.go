// SPDX-License-Identifier: MIT
//
// Command ising computes exact thermodynamic averages of small Ising systems.
//
//	ising average --ring 6 --coupling 2 --temperature 1
//	ising sweep --config run.yaml --sweep-workers 4 --json
//
// Logs go to stderr; results go to stdout as a table or JSON.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ising:", err)
		stop()
		os.Exit(1)
	}
}
