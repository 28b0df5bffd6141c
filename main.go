package main

import "github.com/nathanhack/gf2codes/cmd"

func main() {
	cmd.Execute()
}
