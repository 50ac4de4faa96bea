package main

import (
	"github.com/jackiesafari/dam-attack-sub002/internal/cli"
)

func main() {
	cli.Execute()
}
