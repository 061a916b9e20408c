package main

import "promptrouter/cmd"

func main() {
	cmd.Execute()
}
