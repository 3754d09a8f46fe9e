package main

import "github.com/embedkit/hexlit/cmd"

var version = "v1.1.0"

func main() {
	cmd.Execute(version)
}
