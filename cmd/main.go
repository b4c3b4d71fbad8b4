package main

import (
	"github.com/chritchens/sophia/pkg/cmd"
)

func main() {
	cmd.Execute()
}
