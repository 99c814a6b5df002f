package main

import "library/internal/cli"

func main() {
	cli.Execute()
}
