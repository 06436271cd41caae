package main

import "github.com/salchaD-27/pac-check/cmd/pac-check/cmd"

func main() {
	cmd.Execute()
}
