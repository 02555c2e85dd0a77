package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/herohde/gogoban/pkg/board"
	"github.com/herohde/gogoban/pkg/gtp"
	"github.com/herohde/gogoban/pkg/rule"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	size = flag.Int("size", 19, "Board size (NxN), 1-19")
	komi = flag.Float64("komi", 7.5, "Komi (compensation added to White's score)")
	name = flag.String("rule", "chinese", "Ruleset: chinese or japanese")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: gogoban [options]

GOGOBAN is a Go Text Protocol front end over a Go (the board game) engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	r := parseRule(*name, *komi)
	logw.Infof(ctx, "gogoban %v starting: size=%v rule=%v", version, *size, r)

	in := readStdinLines(ctx)
	driver, out := gtp.NewDriver(ctx, in,
		gtp.WithSize(board.Size{Height: *size, Width: *size}),
		gtp.WithRule(r))
	go writeStdoutLines(ctx, out)

	<-driver.Closed()
}

func parseRule(name string, komi float64) rule.Rule {
	switch strings.ToLower(name) {
	case "japanese":
		return rule.Japanese(rule.WithKomi(komi))
	default:
		return rule.Chinese(rule.WithKomi(komi))
	}
}

// readStdinLines reads stdin lines into a chan. Async.
func readStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// writeStdoutLines writes lines from the given chan to stdout.
func writeStdoutLines(ctx context.Context, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
}
