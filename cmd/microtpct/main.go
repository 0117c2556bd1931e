// cmd/microtpct/main.go
package main

import (
	"go.uber.org/automaxprocs/maxprocs"

	"microtpct/internal/app"
	"microtpct/internal/appshell"
)

func main() {
	// --threads 0 follows GOMAXPROCS, which honors container CPU quotas.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	appshell.Main(app.RunContext)
}
