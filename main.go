package main

import "github.com/rail44/advent/cmd"

func main() {
	cmd.Execute()
}
