package main

import "pickem-tracker/internal/cli"

func main() {
	cli.Execute()
}
