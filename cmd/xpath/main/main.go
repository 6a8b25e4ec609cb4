package main

import (
	"os"

	"github.com/arthur-debert/xpath/cmd/xpath"
)

func main() {
	os.Exit(xpath.Execute())
}
