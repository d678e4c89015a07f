// Command type-inspector prints the embedding hierarchy and member
// classification of Go types, and surveys the types declared by a package.
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

	err := rootCmd.ExecuteContext(ctx)
	if cerr := closeOutput(); err == nil {
		err = cerr
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
