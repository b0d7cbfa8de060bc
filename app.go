package main

import "github.com/repostats/repostats-go/cmd"

func main() {
	cmd.Run()
}
