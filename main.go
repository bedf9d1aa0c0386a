package main

import "github.com/arjenschwarz/tmpfix/cmd"

func main() {
	cmd.Execute()
}
