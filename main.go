/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "playmenu/cmd"

func main() {
	cmd.Execute()
}
