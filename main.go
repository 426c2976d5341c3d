package main

import "github.com/waltertaya/codelearn/cmd"

func main() {
	cmd.Execute()
}
