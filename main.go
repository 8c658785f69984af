package main

import "monthwise/cmd"

func main() {
	cmd.Execute()
}
