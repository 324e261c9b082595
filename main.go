package main

import "github.com/sjzsdu/codepack/cmd"

func main() {
	cmd.Execute()
}
