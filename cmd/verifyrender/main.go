// Command verifyrender checks that the default seeded post renders on a
// local dev server. It exits 0 when the post renders and 1 otherwise.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/eringen/blogseed/verify"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ok, err := verify.New().Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if !ok {
		stop()
		os.Exit(1)
	}
}
