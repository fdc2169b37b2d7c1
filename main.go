package main

import "bird-herd/cmd"

func main() {
	cmd.Execute()
}
