package main

import "github.com/dgallion1/askdoc/internal/cli"

func main() {
	cli.Execute()
}
