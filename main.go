package main

import "forexjournal/internal/cli"

func main() {
	cli.Execute()
}
