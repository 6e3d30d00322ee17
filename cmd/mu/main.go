// This file is part of mu_ - https://github.com/BrickNumber5/mu_
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BrickNumber5/mu/mu"
	"github.com/BrickNumber5/mu/mu/lang/host"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

var (
	noRawIO bool
	debug   bool
	dump    bool
)

// rawReader adapts a raw-mode tty to the parser's expectations: CR becomes
// LF, CTRL-D becomes io.EOF, and everything read is echoed back since raw
// mode turned the terminal's own echo off.
type rawReader struct {
	r    io.Reader
	echo *bufio.Writer
}

func (r *rawReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	for k := 0; k < n; k++ {
		switch p[k] {
		case 4: // CTRL-D
			r.writeEcho(p[:k])
			return k, io.EOF
		case '\r':
			p[k] = '\n'
		}
	}
	r.writeEcho(p[:n])
	return n, err
}

func (r *rawReader) writeEcho(p []byte) {
	for _, b := range p {
		if b == '\n' {
			r.echo.Write([]byte{'\r', '\n'})
		} else {
			r.echo.WriteByte(b)
		}
	}
	r.echo.Flush()
}

func setupIO() (raw bool, tearDown func()) {
	var err error
	if !noRawIO {
		tearDown, err = setRawIO()
		if err != nil {
			return false, nil
		}
	}
	return !noRawIO, tearDown
}

func atExit(err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	os.Exit(1)
}

// registerHostOps installs the system operations the command line tool
// offers to programs it runs: (~~sys emit e) evaluates e, writes its
// readable form to the output and returns it; (~~sys do e) evaluates e and
// returns the result, exercising handler re-entrancy for programs that
// build code at runtime.
func registerHostOps(i *mu.Instance, w *bufio.Writer) {
	i.Register(i.InternString("emit"), func(i *mu.Instance, arg, env mu.Value) mu.Value {
		v, err := i.Eval(arg, env, i.Anchor())
		if err != nil {
			return mu.Nil
		}
		host.Print(i, v, w)
		w.Write([]byte{'\n'})
		w.Flush()
		return v
	})
	i.Register(i.InternString("do"), func(i *mu.Instance, arg, env mu.Value) mu.Value {
		v, err := i.Eval(arg, env, i.Anchor())
		if err != nil {
			return mu.Nil
		}
		return v
	})
}

func main() {
	var err error
	var i *mu.Instance

	stdout := bufio.NewWriter(os.Stdout)

	defer func() {
		stdout.Flush()
		if err == nil && dump && i != nil {
			err = host.DumpHeap(i, os.Stdout)
		}
		atExit(err)
	}()

	var withFiles fileList

	expr := flag.String("e", "", "evaluate `expression` and print the result")
	cells := flag.Int("cells", 0, "bound the cons heap to `n` cells (0 = host memory)")
	flag.Var(&withFiles, "with", "Add `filename` to the input list (can be specified multiple times)")
	flag.BoolVar(&dump, "dump", false, "dump the cons heap and yard upon exit")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")

	flag.Parse()

	i, err = mu.New(mu.MaxCells(*cells))
	if err != nil {
		return
	}
	registerHostOps(i, stdout)

	env := mu.Nil

	withFiles = append(withFiles, flag.Args()...)
	for _, name := range withFiles {
		var f *os.File
		f, err = os.Open(name)
		if err != nil {
			return
		}
		err = host.REPL(i, env, bufio.NewReader(f), stdout)
		f.Close()
		if err != nil {
			return
		}
	}

	if *expr != "" {
		var v mu.Value
		v, err = host.EvalString(i, *expr, env)
		if err != nil {
			return
		}
		if err = host.Print(i, v, stdout); err != nil {
			return
		}
		_, err = stdout.Write([]byte{'\n'})
		return
	}

	if len(withFiles) > 0 {
		return
	}

	// interactive: raw tty unless redirected input makes that pointless.
	rawtty, ioTearDownFn := setupIO()
	if ioTearDownFn != nil {
		defer ioTearDownFn()
	}
	var in io.Reader
	if rawtty {
		in = &rawReader{r: os.Stdin, echo: stdout}
	} else {
		in = bufio.NewReader(os.Stdin)
	}
	err = host.REPL(i, env, in, stdout)
}
