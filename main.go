package main

import (
	"os"

	"gosh/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
