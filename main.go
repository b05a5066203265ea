package main

import "fitfuel/cmd"

func main() {
	cmd.Execute()
}
