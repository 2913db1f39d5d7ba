package main

import "github.com/sarchlab/cashsim/cashsim/cmd"

func main() {
	cmd.Execute()
}
