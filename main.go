package main

import "audiobook-exporter/cmd"

func main() {
	cmd.Execute()
}
