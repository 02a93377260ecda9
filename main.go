package main

import "github.com/arcops/arc-deploy/cmd"

func main() {
	cmd.Execute()
}
