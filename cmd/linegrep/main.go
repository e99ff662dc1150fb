package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lestrrat-go/pdebug"
	"github.com/peco/linegrep"
	"github.com/peco/linegrep/internal/util"
	"github.com/peco/linegrep/sig"
)

func main() {
	ctx, stop := sig.Watch(context.Background(), sig.ReceivedHandlerFunc(func(s os.Signal) {
		if pdebug.Enabled {
			pdebug.Printf("received signal %s, stopping scan", s)
		}
	}))

	err := linegrep.New().Run(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		st, _ := util.GetExitStatus(err)
		os.Exit(st)
	}
}
