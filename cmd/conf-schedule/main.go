package main

import (
	"github.com/pfrederiksen/conf-schedule/internal/cli"
)

func main() {
	cli.Execute()
}
