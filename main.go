package main

import "github.com/remem-labs/remem/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
