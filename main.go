package main

import "autolang/cmd"

func main() {
	cmd.Execute()
}
