package main

import (
	"github.com/wjessop/bitwise/internal/cli"
)

func main() {
	cli.Execute(cli.NewRootCmd())
}
