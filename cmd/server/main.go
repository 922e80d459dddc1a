package main

import (
	"github.com/shopstack/inventory-api/cmd"
)

func main() {
	cmd.Execute()
}
