package strcatcmd

import (
	"io"
	"os"

	"golang.org/x/term"
	"nikand.dev/go/cli"
	"nikand.dev/go/hacked/hfmt"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
	"tlog.app/go/tlog/ext/tlflag"

	"nikand.dev/go/strcat"
	"nikand.dev/go/strcat/bench"
)

var stdout io.Writer = os.Stdout

func App() *cli.Command {
	strCmd := &cli.Command{
		Name:        "str,s",
		Description: "concatenate arguments",
		Action:      strRun,
		Args:        cli.Args{},
	}

	pathCmd := &cli.Command{
		Name:        "path,p",
		Description: "join arguments as path segments",
		Action:      pathRun,
		Args:        cli.Args{},
	}

	envCmd := &cli.Command{
		Name:        "env,e",
		Description: "print environment variables values concatenated",
		Action:      envRun,
		Args:        cli.Args{},
	}

	filesCmd := &cli.Command{
		Name:        "files,f",
		Description: "concatenate files content",
		Action:      filesRun,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("output,out,o", "-", "output file (- is stdout)"),
		},
	}

	benchCmd := &cli.Command{
		Name:        "bench",
		Description: "compare strcat with formatting functions",
		Action:      benchRun,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "strcat",
		Description: "concatenate strings, paths and files",
		Before:      before,
		Flags: []*cli.Flag{
			cli.NewFlag("log", "stderr?dm", "log output file (or stderr)"),
			cli.NewFlag("verbosity,v", "", "logger verbosity topics"),
			cli.NewFlag("newline,n", term.IsTerminal(int(os.Stdout.Fd())), "print newline after the result"),
			cli.FlagfileFlag,
			cli.HelpFlag,
		},
		Commands: []*cli.Command{
			strCmd,
			pathCmd,
			envCmd,
			filesCmd,
			benchCmd,
		},
	}

	return app
}

func before(c *cli.Command) error {
	w, err := tlflag.OpenWriter(c.String("log"))
	if err != nil {
		return errors.Wrap(err, "open log file")
	}

	tlog.DefaultLogger = tlog.New(w)

	tlog.SetVerbosity(c.String("verbosity"))

	return nil
}

func strRun(c *cli.Command) error {
	if c.Args.Len() == 0 {
		return errors.New("at least one argument expected")
	}

	var b strcat.Buf
	b.Cat(c.Args[0], c.Args[1:]...)

	return output(&b, c.Bool("newline"))
}

func pathRun(c *cli.Command) error {
	if c.Args.Len() == 0 {
		return errors.New("at least one segment expected")
	}

	args := []string(c.Args)

	b := strcat.AppendPath(strcat.Buf(nil), args[0], args[1:]...)

	return output(&b, c.Bool("newline"))
}

func envRun(c *cli.Command) error {
	if c.Args.Len() == 0 {
		return errors.New("at least one variable name expected")
	}

	vals := make([]string, c.Args.Len())

	for i, name := range c.Args {
		vals[i] = os.Getenv(name)
	}

	b := strcat.AppendOSString(strcat.Buf(nil), vals[0], vals[1:]...)

	return output(&b, c.Bool("newline"))
}

func filesRun(c *cli.Command) (err error) {
	if c.Args.Len() == 0 {
		return errors.New("at least one file expected")
	}

	parts, err := readFiles(c.Args)
	if err != nil {
		return err
	}

	res := strcat.Bytes(parts[0], parts[1:]...)

	tlog.V("files").Printw("concatenated", "files", len(parts), "size", len(res))

	return writeFile(c.String("output"), res)
}

func benchRun(c *cli.Command) (err error) {
	err = bench.Check()
	if err != nil {
		return errors.Wrap(err, "check")
	}

	filter := ""
	if c.Args.Len() != 0 {
		filter = c.Args.First()
	}

	var b strcat.Buf

	bench.Run(filter, func(r bench.Result) {
		tlog.Printw("benchmark", "group", r.Group, "impl", r.Impl, "n", r.N, "ns_op", r.NsPerOp, "allocs_op", r.AllocsPerOp, "bytes_op", r.BytesPerOp)

		b = hfmt.Appendf(b, "%-16s %-8s %10d ns/op %4d allocs/op %6d B/op\n", r.Group, r.Impl, r.NsPerOp, r.AllocsPerOp, r.BytesPerOp)
	})

	_, err = stdout.Write(b)
	if err != nil {
		return errors.Wrap(err, "write")
	}

	return nil
}

// readFiles reads every file exactly once, before anything is concatenated.
func readFiles(names []string) (parts [][]byte, err error) {
	parts = make([][]byte, 0, len(names))

	for _, n := range names {
		var p []byte

		if n == "-" {
			p, err = io.ReadAll(os.Stdin)
		} else {
			p, err = os.ReadFile(n)
		}
		if err != nil {
			return nil, errors.Wrap(err, "read %v", n)
		}

		tlog.V("files").Printw("read file", "file", n, "size", len(p))

		parts = append(parts, p)
	}

	return parts, nil
}

func writeFile(name string, p []byte) (err error) {
	if name == "" || name == "-" {
		_, err = stdout.Write(p)
		if err != nil {
			return errors.Wrap(err, "write")
		}

		return nil
	}

	err = os.WriteFile(name, p, 0o644)
	if err != nil {
		return errors.Wrap(err, "write %v", name)
	}

	return nil
}

func output(b *strcat.Buf, newline bool) error {
	if newline {
		b.Cat("\n")
	}

	_, err := stdout.Write(b.Bytes())
	if err != nil {
		return errors.Wrap(err, "write")
	}

	return nil
}
