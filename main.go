package main

import (
	"github.com/tzok/sgd-annotator/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
