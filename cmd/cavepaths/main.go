// Command cavepaths counts the start→end routes through a cave system.
//
// Usage:
//
//	cavepaths count caves.txt                  # both policies, one count per line
//	cavepaths count --policy single caves.txt  # just the single-visit count
//	cavepaths paths --policy extra caves.txt   # every path, one per line
//	cavepaths inspect caves.txt                # graph statistics and sanity checks
package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	root := newRootCmd(fset)
	code := 0
	if err := root.Execute(); err != nil {
		klog.Errorf("cavepaths: %v", err)
		code = 1
	}
	klog.Flush()
	os.Exit(code)
}
