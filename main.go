/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "testdeck/cmd"

func main() {
	cmd.Execute()
}
