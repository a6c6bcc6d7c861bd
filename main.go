package main

import "github.com/meinhoongagan/handyhub/cmd"

func main() {
	cmd.Execute()
}
