// notableparse - Splunk notable event field extractor
//
// notableparse applies named-capture regular expressions to raw Splunk
// "notable" event lines and emits one structured record per line.
package main

import (
	"os"

	"github.com/soclib/notableparse/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
