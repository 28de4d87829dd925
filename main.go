/*
Copyright © 2026 Erik Juhani
*/
package main

import "github.com/erikjuhani/droll/cmd"

func main() {
	cmd.Execute()
}
