package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"neumo/eval"
)

// RunHeadless evaluates one expression per input line without opening a
// window. It returns on EOF, on "quit"/"exit", or once ctx is done.
func RunHeadless(ctx context.Context, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		d, err := eval.Evaluate(line)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		fmt.Fprintln(out, eval.Format(d))
	}
	return sc.Err()
}
