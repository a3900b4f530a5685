package main

import (
	"tradekit/pkg/cmd"
)

func main() {
	cmd.Execute()
}
