package main

import "nba-scores/internal/cli"

func main() {
	cli.Execute()
}
