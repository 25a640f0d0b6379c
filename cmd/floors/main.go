package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	"github.com/tliron/kutil/util"

	_ "github.com/tliron/commonlog/simple"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

var log = commonlog.GetLogger("floors")

func main() {
	commonlog.Configure(0, nil)

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		code := exitCode(err)
		if code == exitUsage {
			fmt.Fprintf(os.Stderr, "Error: %v\n%s", err, rootCmd.UsageString())
		} else {
			log.Errorf("%v", err)
		}
		// util.Exit flushes the buffered log writer.
		util.Exit(code)
	}
}

func exitCode(err error) int {
	var uerr *usageError
	if errors.As(err, &uerr) {
		return exitUsage
	}
	return exitFailure
}
