package main

import "github.com/fixturelab/scanfix/cmd"

func main() {
	cmd.Execute()
}
