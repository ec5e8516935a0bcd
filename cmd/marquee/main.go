package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	err := newRootCommand().Execute()
	if err == nil {
		return
	}
	// An interrupted command already said everything worth saying.
	if !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
	}
	os.Exit(1)
}
