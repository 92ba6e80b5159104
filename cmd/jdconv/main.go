package main

import "github.com/SebastiaanKlippert/go-calendar/internal/cli"

func main() {
	cli.Execute()
}
