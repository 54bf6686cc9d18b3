package main

import "github.com/dmitrymomot/otptick/cmd"

func main() {
	cmd.Execute()
}
