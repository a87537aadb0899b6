package main

import "github.com/0d0b3nus/chorale-writer/cmd"

func main() {
	cmd.Execute()
}
