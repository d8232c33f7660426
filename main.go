package main

import (
	"os"

	"github.com/thenoetrevino/issuetracker/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
