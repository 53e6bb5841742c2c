// The main package for the seitenfmt executable.
package main

import (
	"github.com/seiten-tools/seiten-formatter/cmd"
)

func main() {
	cmd.Execute()
}
