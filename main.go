package main

import "github.com/izza-m1/Secgap-Analyzer/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
