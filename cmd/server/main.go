package main

import "github.com/ayombe/server/cmd/server/cmd"

func main() {
	cmd.Execute()
}
