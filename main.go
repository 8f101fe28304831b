package main

import "github.com/alexiusacademia/gomech/cmd"

func main() {
	cmd.Execute()
}
