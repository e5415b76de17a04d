package main

import "github.com/mlehnert/scopelog/cmd/scopelog-demo/cmd"

func main() {
	cmd.Execute()
}
