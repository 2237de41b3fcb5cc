package main

import "github.com/pitwall-dev/pit-strategy-go/cmd"

func main() {
	cmd.Execute()
}
