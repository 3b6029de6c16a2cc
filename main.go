package main

import (
	"github.com/thoerner/sevn/cmd"
)

func main() {
	cmd.Execute()
}
