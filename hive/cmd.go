package hive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type Cmd struct {
	Path   string
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Ctx bounds long running commands. Interrupts cancel it as well.
	Ctx context.Context

	ExitCode int
	code     chan int
}
type CmdFunc func(*Cmd) int

var Bees = map[string]CmdFunc{}

// defaultBee runs when the program is given flags but no command name.
const defaultBee = "grind"

func Command(argv ...string) *Cmd {
	c := &Cmd{}
	c.Path = argv[0]
	c.Args = argv
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	c.Ctx = context.Background()
	c.code = make(chan int, 1)
	return c
}

func CmdList() (cmds []string) {
	for cmd := range Bees {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return
}

func (c *Cmd) Default() int {
	fmt.Fprintf(c.Stderr, "Usage: seedgrinder [command] [flags]\nCommands: %s\n",
		strings.Join(CmdList(), ", "))
	fmt.Fprintf(c.Stderr, "Flags without a command run %s.\n", defaultBee)
	return 1
}

func (c *Cmd) Run() int {
	c.Start()
	c.Wait()
	return c.ExitCode
}

func (c *Cmd) Start() {
	cmd := strings.TrimSuffix(filepath.Base(c.Path), ".exe")
	if cmd == "seedgrinder" {
		if len(c.Args) < 2 {
			go func() { c.code <- c.Default() }()
			return
		}
		if strings.HasPrefix(c.Args[1], "-") {
			cmd = defaultBee
		} else {
			c.Args = c.Args[1:]
			c.Path = c.Args[0]
			cmd = filepath.Base(c.Path)
		}
	}
	if fn, ok := Bees[cmd]; ok {
		go func() { c.code <- fn(c) }()
		return
	}
	fmt.Fprintln(c.Stderr, "bad command:", c.Args[0])
	c.code <- 1
}

func (c *Cmd) Wait() {
	c.ExitCode = <-c.code
}
