package gtp_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/herohde/gogoban/pkg/board"
	"github.com/herohde/gogoban/pkg/gtp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundtrip(t *testing.T, opts ...gtp.Option) (chan<- string, <-chan string, *gtp.Driver) {
	ctx := context.Background()
	in := make(chan string, 100)
	d, out := gtp.NewDriver(ctx, in, opts...)
	return in, out, d
}

func send(t *testing.T, in chan<- string, out <-chan string, line string) string {
	in <- line
	select {
	case resp := <-out:
		return resp
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for response to %q", line)
		return ""
	}
}

func TestProtocolBasics(t *testing.T) {
	in, out, _ := roundtrip(t)

	assert.Equal(t, "= 2\n", send(t, in, out, "protocol_version"))
	assert.Equal(t, "= gogoban\n", send(t, in, out, "name"))
	assert.Contains(t, send(t, in, out, "list_commands"), "play")
	assert.Equal(t, "= true\n", send(t, in, out, "known_command play"))
	assert.Equal(t, "= false\n", send(t, in, out, "known_command bogus"))
}

func TestBoardSizeAndClear(t *testing.T) {
	in, out, _ := roundtrip(t)

	assert.Equal(t, "= \n", send(t, in, out, "boardsize 9"))
	assert.Equal(t, "= \n", send(t, in, out, "clear_board"))
	assert.Equal(t, "? unacceptable size\n", send(t, in, out, "boardsize 0"))
}

func TestPlayAndShowBoard(t *testing.T) {
	in, out, _ := roundtrip(t, gtp.WithSize(board.Size{Height: 9, Width: 9}))

	assert.Equal(t, "= \n", send(t, in, out, "play black C3"))
	resp := send(t, in, out, "showboard")
	assert.True(t, strings.HasPrefix(resp, "="))

	assert.Equal(t, "= \n", send(t, in, out, "play white pass"))
}

func TestPlayIllegalMove(t *testing.T) {
	in, out, _ := roundtrip(t, gtp.WithSize(board.Size{Height: 5, Width: 5}))

	send(t, in, out, "play black A1")
	send(t, in, out, "play white A2")

	resp := send(t, in, out, "play black A2")
	assert.Equal(t, "? illegal move\n", resp)
}

func TestGenMoveUnsupported(t *testing.T) {
	in, out, _ := roundtrip(t)
	assert.Equal(t, "? genmove not supported\n", send(t, in, out, "genmove black"))
}

func TestQuitClosesDriver(t *testing.T) {
	in, out, d := roundtrip(t)
	send(t, in, out, "quit")

	select {
	case <-d.Closed():
	case <-time.After(time.Second):
		t.Fatal("driver did not close after quit")
	}
}

func TestFinalScoreOnEmptyBoard(t *testing.T) {
	in, out, _ := roundtrip(t, gtp.WithSize(board.Size{Height: 5, Width: 5}))

	send(t, in, out, "play black pass")
	resp := send(t, in, out, "final_score")
	require.True(t, strings.HasPrefix(resp, "="))
}
