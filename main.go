package main

import "github.com/lepinkainen/verses/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
