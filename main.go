package main

import (
	"github.com/csalas-alarcon/genoma-humano/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
