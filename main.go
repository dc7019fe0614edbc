package main

import "github.com/agentic-research/marquee/cmd"

func main() {
	cmd.Execute()
}
