package main

import "github.com/oy3o/ftlprof/cmd/ftlprof/cmd"

func main() {
	cmd.Execute()
}
