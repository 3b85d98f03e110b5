package main

import "grokcli/cmd"

func main() {
	cmd.Execute()
}
