package main

import "github.com/dsemenov/userbase/cmd"

func main() {
	cmd.Execute()
}
