// Command timeutc runs the timeutc analyzer standalone or via go vet -vettool.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/rezkam/tasks/tools/linters/timeutc"
)

func main() {
	singlechecker.Main(timeutc.Analyzer)
}
