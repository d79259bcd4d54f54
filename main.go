package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"neumo/internal/buildinfo"
	"neumo/ui"
)

func main() {
	var headless bool
	var scale int
	var version bool
	flag.BoolVar(&headless, "headless", false, "Evaluate expressions from stdin without a window.")
	flag.IntVar(&scale, "scale", 2, "Window pixel scale.")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Long())
		return
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := ui.RunHeadless(ctx, os.Stdin, os.Stdout); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := ui.Run(scale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
