package main

import "github.com/notargets/gofem/cmd"

func main() {
	cmd.Execute()
}
