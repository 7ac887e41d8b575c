package main

import "github.com/dareyes/vita-cli/cmd/vita"

func main() {
	vita.Execute()
}
