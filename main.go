package main

import "github.com/tantralabs/theo/cmd"

func main() {
	cmd.Execute()
}
