/*
Copyright © 2023 Glossopoeia
*/
package main

import "github.com/glossopoeia/matcha/cmd"

func main() {
	cmd.Execute()
}
