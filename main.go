package main

import "Recipe-Book/cmd"

func main() {
	cmd.Execute()
}
