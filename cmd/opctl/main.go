package main

import (
	"orderprocessor/cmd/opctl/cmd"
)

func main() {
	cmd.Execute()
}
