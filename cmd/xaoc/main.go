package main

import (
	"context"
	"os"

	"xaoc/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), cli.Stdio(), os.Args[1:]))
}
