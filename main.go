package main

import "github.com/gaurav-prasanna/wikibook/cmd"

func main() {
	cmd.Execute()
}
