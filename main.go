package main

import "github.com/tomato-timer/tomato/cmd"

func main() {
	cmd.Execute()
}
