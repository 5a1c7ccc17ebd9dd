package main

import "github.com/yoch/ahocora/cmd"

func main() {
	cmd.Execute()
}
