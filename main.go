package main

import "recdiag/cmd"

func main() {
	cmd.Execute()
}
