// Package gtp implements a Go Text Protocol front end over a pkg/rule Match: a
// line-channel driver that reads GTP commands and writes GTP responses.
//
// See: https://www.lysator.liu.se/~gunnar/gtp/gtp2-spec-draft2/gtp2-spec.html
package gtp

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/herohde/gogoban/pkg/board"
	"github.com/herohde/gogoban/pkg/rule"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

const ProtocolName = "gtp"

// Name and Version identify this engine in response to "name" and "version".
const (
	Name    = "gogoban"
	Version = "0.1"
)

// response is a single GTP reply: a status line prefixed with "=" on success or "?" on
// failure, followed by a blank line.
type response struct {
	message string
	success bool
}

func success(format string, args ...interface{}) response {
	return response{message: fmt.Sprintf(format, args...), success: true}
}

func failure(format string, args ...interface{}) response {
	return response{message: fmt.Sprintf(format, args...), success: false}
}

func (r response) String() string {
	prefix := "="
	if !r.success {
		prefix = "?"
	}
	return prefix + " " + r.message + "\n"
}

type handler func(d *Driver, args []string) response

var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"protocol_version": func(d *Driver, args []string) response { return success("2") },
		"name":             func(d *Driver, args []string) response { return success(Name) },
		"version":          func(d *Driver, args []string) response { return success(Version) },
		"known_command":    handleKnownCommand,
		"list_commands":    handleListCommands,
		"boardsize":        handleBoardSize,
		"clear_board":      handleClearBoard,
		"komi":             handleKomi,
		"play":             handlePlay,
		"genmove":          handleGenMove,
		"showboard":        handleShowBoard,
		"final_score":      handleFinalScore,
		"quit":             func(d *Driver, args []string) response { return success("") },
	}
}

// Option configures a Driver at construction time.
type Option func(*options)

type options struct {
	size board.Size
	rule rule.Rule
}

// WithSize sets the initial board size (default 19x19).
func WithSize(size board.Size) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithRule sets the initial rule set (default rule.NewRule()).
func WithRule(r rule.Rule) Option {
	return func(o *options) {
		o.rule = r
	}
}

// Driver reads GTP command lines and writes GTP response lines, maintaining a
// pkg/rule.Match across boardsize/clear_board/komi/play commands.
type Driver struct {
	opt options
	m   *rule.Match

	out chan<- string

	quit   chan struct{}
	closed atomic.Bool
}

// NewDriver starts a Driver reading from in and returns it along with its outbound
// channel of response lines.
func NewDriver(ctx context.Context, in <-chan string, opts ...Option) (*Driver, <-chan string) {
	opt := options{size: board.Size{Height: 19, Width: 19}, rule: rule.NewRule()}
	for _, fn := range opts {
		fn(&opt)
	}

	out := make(chan string, 100)
	d := &Driver{
		opt:  opt,
		m:    rule.NewMatch(opt.size, opt.rule),
		out:  out,
		quit: make(chan struct{}),
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) Close() {
	if d.closed.CAS(false, true) {
		close(d.quit)
	}
}

func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "GTP protocol initialized: size=%v rule=%v", d.opt.size, d.opt.rule)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			cmd, args := parseLine(line)
			if cmd == "" {
				continue
			}

			h, ok := handlers[cmd]
			if !ok {
				d.out <- failure("unknown command").String()
				continue
			}

			d.out <- h(d, args).String()

			if cmd == "quit" {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

func parseLine(line string) (cmd string, args []string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil
	}
	fields := strings.Fields(line)
	return strings.ToLower(fields[0]), fields[1:]
}

func handleKnownCommand(d *Driver, args []string) response {
	if len(args) != 1 {
		return failure("wrong number of arguments")
	}
	_, ok := handlers[args[0]]
	return success(strconv.FormatBool(ok))
}

func handleListCommands(d *Driver, args []string) response {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return success(strings.Join(names, "\n"))
}

func handleBoardSize(d *Driver, args []string) response {
	if len(args) != 1 {
		return failure("wrong number of arguments")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > board.MaxBoardLength {
		return failure("unacceptable size")
	}

	d.opt.size = board.Size{Height: n, Width: n}
	d.m = rule.NewMatch(d.opt.size, d.opt.rule)
	return success("")
}

func handleClearBoard(d *Driver, args []string) response {
	d.m = rule.NewMatch(d.opt.size, d.opt.rule)
	return success("")
}

func handleKomi(d *Driver, args []string) response {
	if len(args) != 1 {
		return failure("wrong number of arguments")
	}
	komi, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return failure("syntax error")
	}

	d.opt.rule = rule.NewRule(rule.WithKomi(komi), rule.WithIllegal(d.opt.rule.Illegal), rule.WithScore(d.opt.rule.Score))
	d.m = rule.NewMatch(d.opt.size, d.opt.rule)
	return success("")
}

func handlePlay(d *Driver, args []string) response {
	if len(args) != 2 {
		return failure("wrong number of arguments")
	}

	color, ok := board.ParseColor(args[0])
	if !ok {
		return failure("syntax error")
	}

	coord, isPlay, err := parseVertex(d.opt.size, args[1])
	if err != nil {
		return failure("syntax error")
	}
	if !isPlay {
		d.m.Pass(context.Background())
		return success("")
	}

	if err := d.m.TryPlay(context.Background(), coord, color); err != nil {
		return failure("illegal move")
	}
	return success("")
}

func handleGenMove(d *Driver, args []string) response {
	// This engine has no move generation/AI: genmove is intentionally unsupported.
	return failure("genmove not supported")
}

func handleShowBoard(d *Driver, args []string) response {
	out := "\n" + d.m.Goban().String()
	if ko, ok := d.m.KoPoint(); ok {
		out += fmt.Sprintf("Ko: %s\n", formatVertex(d.opt.size, ko))
	}
	return success(out)
}

func handleFinalScore(d *Driver, args []string) response {
	black, white := rule.CalculateScore(d.m.Goban(), d.opt.rule, d.m.Prisoners())
	white += d.opt.rule.Komi

	switch {
	case black > white:
		return success("B+%.1f", black-white)
	case white > black:
		return success("W+%.1f", white-black)
	default:
		return success("0")
	}
}
