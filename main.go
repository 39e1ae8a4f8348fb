package main

import "github.com/agentlint/agentlint/cmd/agentlint"

func main() { agentlint.Execute() }
