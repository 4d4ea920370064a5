// Command enctrace replays a trace of raw encoder samples through the
// detent decoder and prints the decoded events. Useful for checking a
// captured rotation trace against what the firmware would do with it.
//
// Each argument (or whitespace-separated stdin token) is one poll
// sample: a signed raw count ("1", "-2"), "P" for button down or "R"
// for button up.
//
//	enctrace 1 1 P R -1 -1
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"lumen/driver/encoder"
	"lumen/hal"
)

// tracePort feeds scripted samples into the decoder one poll at a time.
type tracePort struct {
	step int8
	btn  bool
}

func (p *tracePort) Step() int8 {
	s := p.step
	p.step = 0
	return s
}

func (p *tracePort) Button() bool { return p.btn }

var _ hal.EncoderPort = (*tracePort)(nil)

func main() {
	strict := false
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "-strict" {
		strict = true
		args = args[1:]
	}

	tokens := args
	if len(tokens) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			tokens = append(tokens, sc.Text())
		}
	}

	port := &tracePort{}
	dec := encoder.New(port)
	dec.Strict = strict

	for n, tok := range tokens {
		switch tok {
		case "P", "p":
			port.btn = true
		case "R", "r":
			port.btn = false
		default:
			v, err := strconv.ParseInt(tok, 10, 8)
			if err != nil {
				fmt.Fprintf(os.Stderr, "enctrace: bad token %q at sample %d\n", tok, n)
				os.Exit(1)
			}
			port.step = int8(v)
		}

		dec.Update()
		if t := dec.PokeTicks(); t != 0 {
			fmt.Printf("sample %d: ticks %+d\n", n, t)
		}
		if dec.PokeButton() {
			fmt.Printf("sample %d: click\n", n)
		}
	}
}
