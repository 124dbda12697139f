package main

import "github.com/itsbrex/loopy/cmd"

func main() {
	cmd.Execute()
}
