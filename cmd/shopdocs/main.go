package main

import "github.com/nfrund/shopdocs/cmd/shopdocs/cmd"

func main() {
	cmd.Execute()
}
