package main

import (
	"stackmatrix/pkg/cli"
)

func main() {
	cli.Execute()
}
