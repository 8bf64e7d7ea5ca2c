package main

import "github.com/mfriesen/tend/cmd"

func main() {
	cmd.Execute()
}
