package main

import "github.com/stanleychen/sgtpuzzles/cmd"

func main() {
	cmd.Execute()
}
