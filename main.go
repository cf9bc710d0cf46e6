package main

import "github.com/ARQAP/ARQAP-Catalog/src/cli"

func main() {
	cli.Execute()
}
