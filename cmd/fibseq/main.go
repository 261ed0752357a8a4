// cmd/fibseq/main.go
package main

import (
	"fibseq/internal/app"
	"fibseq/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
