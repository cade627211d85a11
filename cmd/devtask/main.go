package main

import "github.com/Koran1/25ICN-NewsReport/cmd/devtask/commands"

func main() {
	commands.Execute()
}
