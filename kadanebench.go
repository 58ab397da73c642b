package main

import "kadanebench/cmd"

func main() {
	cmd.Execute()
}
