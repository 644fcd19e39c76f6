package main

import "github.com/shenergia/solarcalc/cmd"

func main() {
	cmd.Execute()
}
