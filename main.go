package main

import (
	"context"
	"os"

	"silvertiger.com/go/nkncrypto/cli"
)

func main() {
	ctx := context.Background()
	if err := cli.Execute(ctx); err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}
