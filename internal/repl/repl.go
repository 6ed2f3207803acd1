// Package repl runs the interactive balancing loop: prompt, read one
// reaction per line, print the balanced form or the error, until exit, quit
// or end of input.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/stoich/internal/service"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
)

// Prompt precedes every input line.
const Prompt = "Reaction: "

// DefaultMaxLineBytes bounds one input line.
const DefaultMaxLineBytes = 1 << 20

const (
	bannerTitle = "Chemical Reaction Balancer"
	bannerHint  = "Enter a chemical reaction to balance (e.g., H2 + O2 -> H2O):"
	stopped     = "Program stopped."
)

// Balancer is the part of *service.Service the loop needs.
type Balancer interface {
	Balance(ctx context.Context, surface, input string) (service.Result, error)
}

// Option configures Run.
type Option func(*options)

type options struct {
	banner  bool
	profile *termenv.Profile
	maxLine int
}

// WithBanner prints the title and usage hint before the first prompt.
func WithBanner(on bool) Option {
	return func(o *options) { o.banner = on }
}

// WithMaxLineBytes bounds a single input line; longer lines are reported
// and skipped. Default DefaultMaxLineBytes.
func WithMaxLineBytes(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLine = n
		}
	}
}

// WithProfile forces a colour profile instead of detecting it from out.
func WithProfile(p termenv.Profile) Option {
	return func(o *options) { o.profile = &p }
}

// Run drives the loop until exit/quit (any case), end of input or ctx
// cancellation. Balancing errors are printed and the loop continues; only
// I/O errors end it with a non-nil error.
func Run(ctx context.Context, b Balancer, in io.Reader, out io.Writer, opts ...Option) error {
	o := options{maxLine: DefaultMaxLineBytes}
	for _, opt := range opts {
		opt(&o)
	}

	var tout *termenv.Output
	if o.profile != nil {
		tout = termenv.NewOutput(out, termenv.WithProfile(*o.profile))
	} else {
		tout = termenv.NewOutput(out)
	}
	okColor := tout.Color("#22c55e")
	errColor := tout.Color("#ef4444")
	fold := cases.Fold()

	if o.banner {
		if _, err := fmt.Fprintf(tout, "%s\n%s\n", tout.String(bannerTitle).Bold(), bannerHint); err != nil {
			return err
		}
	}

	br := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(tout, Prompt); err != nil {
			return err
		}
		raw, tooLong, err := readLine(br, o.maxLine)
		if errors.Is(err, io.EOF) {
			_, err = io.WriteString(tout, "\n")

			return err
		}
		if err != nil {
			return fmt.Errorf("repl: read: %w", err)
		}
		if tooLong {
			if _, err = fmt.Fprintf(tout, "%s line exceeds %d bytes\n", tout.String("Error:").Foreground(errColor), o.maxLine); err != nil {
				return err
			}
			continue
		}

		line := service.Normalize(raw)
		if line == "" {
			continue
		}
		if w := fold.String(line); w == "exit" || w == "quit" {
			_, err := fmt.Fprintln(tout, stopped)

			return err
		}

		res, err := b.Balance(ctx, service.SurfaceREPL, line)
		if err != nil {
			_, err = fmt.Fprintf(tout, "%s %s\n", tout.String("Error:").Foreground(errColor), res.Error)
		} else {
			_, err = fmt.Fprintf(tout, "%s %s\n", tout.String("Balanced Reaction:").Foreground(okColor), res.Balanced)
		}
		if err != nil {
			return err
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// limit is consumed and discarded with tooLong set. io.EOF is returned only
// when no bytes remain.
func readLine(r *bufio.Reader, limit int) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, rerr := r.ReadSlice('\n')
		if !tooLong && len(buf)+len(chunk) <= limit+2 { // room for "\r\n"
			buf = append(buf, chunk...)
		} else {
			tooLong, buf = true, nil
		}

		switch {
		case errors.Is(rerr, bufio.ErrBufferFull):
			continue
		case errors.Is(rerr, io.EOF) && (len(buf) > 0 || tooLong):
		case rerr != nil:
			return "", false, rerr
		}

		line = strings.TrimRight(string(buf), "\r\n")
		if len(line) > limit {
			return "", true, nil
		}

		return line, tooLong, nil
	}
}
