package main

import "github.com/jsphweid/pcset/cmd"

func main() {
	cmd.Execute()
}
