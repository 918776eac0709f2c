package main

import (
	"github.com/sidecoach/sidecoach/cmd"
)

func main() {
	cmd.Execute()
}
