package debugger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/gbcore/logger"
)

const CONSOLE_HELP = "r: registers, s: step, c: continue, b <addr>: break at, d <addr>: delete break, l: log, q: quit"

// Console is a line mode Inspector.
type Console struct {
	In     *bufio.Reader
	Out    io.Writer
	Prompt bool            // Print a prompt before reading each line.
	Log    *logger.Central // Shown by the 'l' command, if set.
}

var _ Inspector = (*Console)(nil)

// NewConsole creates a console reading commands from in.
func NewConsole(in io.Reader, out io.Writer) (con *Console) {
	con = &Console{
		In:  bufio.NewReader(in),
		Out: out,
	}
	return
}

// Inspect reads commands until one resumes execution. End of input quits.
func (con *Console) Inspect(dbg *Debugger, state State) (err error) {
	fmt.Fprintf(con.Out, "\n%04x: %02x %v\n", state.PC, state.Opcode, state.Mnemonic)

	for {
		if con.Prompt {
			fmt.Fprintf(con.Out, "%v\n> ", CONSOLE_HELP)
		}

		var line string
		line, err = con.In.ReadString('\n')
		if err == io.EOF && len(line) == 0 {
			err = ErrQuit
			return
		}
		if err != nil && err != io.EOF {
			return
		}
		err = nil

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "r", "regs":
			fmt.Fprint(con.Out, state.String())
		case "s", "step":
			dbg.Mode = MODE_STEP
			return
		case "c", "continue":
			dbg.Mode = MODE_RUN
			return
		case "q", "quit":
			err = ErrQuit
			return
		case "b", "d":
			if len(words) != 2 {
				fmt.Fprintln(con.Out, f("usage: %v <addr>", words[0]))
				continue
			}
			addr, perr := strconv.ParseUint(words[1], 0, 16)
			if perr != nil {
				fmt.Fprintln(con.Out, f("bad address %q", words[1]))
				continue
			}
			if words[0] == "b" {
				dbg.AddAddress(uint16(addr))
			} else {
				dbg.RemoveAddress(uint16(addr))
			}
		case "l", "log":
			if con.Log != nil {
				con.Log.Tail(con.Out, 10)
			}
		default:
			fmt.Fprintln(con.Out, f("invalid input"))
		}
	}
}
