package main

import (
	"github.com/lite-lake/cfman/internal/interfaces/cli"
)

func main() {
	cli.Execute()
}
