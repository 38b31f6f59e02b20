package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/avro-datum/allocator"
	"github.com/wippyai/avro-datum/convert"
	"github.com/wippyai/avro-datum/datum"
	"github.com/wippyai/avro-datum/errors"
	"github.com/wippyai/avro-datum/memio"
)

type options struct {
	in          string
	format      string
	path        string
	out         string
	capacity    int
	hex         bool
	stats       bool
	interactive bool
}

func main() {
	var (
		opts    options
		verbose bool
	)
	flag.StringVar(&opts.in, "in", "", "Path to input document")
	flag.StringVar(&opts.format, "format", "", "Input format: json, yaml or msgpack (default: from extension)")
	flag.StringVar(&opts.path, "path", "", "Only show the value at this path (e.g. user.tags[0])")
	flag.StringVar(&opts.out, "out", "", "Re-encode the value as json, yaml or msgpack")
	flag.IntVar(&opts.capacity, "cap", 64*1024, "Output buffer capacity in bytes")
	flag.BoolVar(&opts.hex, "hex", false, "Hex dump the encoded output")
	flag.BoolVar(&opts.stats, "stats", false, "Print allocator statistics")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&opts.interactive, "i", false, "Interactive browser")
	flag.Parse()

	if opts.in == "" {
		fmt.Fprintln(os.Stderr, "Usage: datum -in <file> [-format json|yaml|msgpack] [-path p] [-out format] [-cap n] [-hex] [-stats]")
		fmt.Fprintln(os.Stderr, "       datum -in <file> -i  (interactive mode)")
		os.Exit(1)
	}

	log := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	defer func() { _ = log.Sync() }()
	allocator.SetLogger(log.Named("allocator"))
	datum.SetLogger(log.Named("datum"))
	memio.SetLogger(log.Named("memio"))

	if opts.interactive && !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
		os.Exit(1)
	}

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

func run(stdout io.Writer, opts options) (err error) {
	data, err := os.ReadFile(opts.in)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	format, err := inputFormat(opts)
	if err != nil {
		return err
	}

	tracker := allocator.NewTracking(allocator.NewPool())
	fac := datum.NewFactory(tracker)

	root, err := convert.Load(fac, format, data)
	if err != nil {
		return fmt.Errorf("load %s: %w", format, err)
	}
	defer func() {
		datum.Decref(root)
		if checkErr := tracker.Check(); checkErr != nil && err == nil {
			err = fmt.Errorf("leak check: %w", checkErr)
		}
	}()

	if opts.interactive {
		return runInteractive(opts.in, root)
	}

	target := root
	if opts.path != "" {
		target, err = datum.Lookup(root, opts.path)
		if err != nil {
			return err
		}
	}

	if opts.out == "" {
		fmt.Fprint(stdout, datum.Dump(target))
	} else if err := encode(stdout, opts, target); err != nil {
		return err
	}

	if opts.stats {
		fmt.Fprintf(stdout, "%s %v\n", labelStyle.Render("allocator:"), tracker.Stats())
	}
	return nil
}

func inputFormat(opts options) (convert.Format, error) {
	if opts.format != "" {
		return convert.ParseFormat(opts.format)
	}
	return convert.FormatForPath(opts.in)
}

func encode(stdout io.Writer, opts options, d datum.Datum) error {
	out, err := convert.ParseFormat(opts.out)
	if err != nil {
		return err
	}
	if opts.capacity <= 0 {
		return fmt.Errorf("-cap must be positive, got %d", opts.capacity)
	}

	w := memio.NewWriter(make([]byte, opts.capacity))
	defer w.Release()

	if err := convert.Save(w, out, d); err != nil {
		if errors.IsResourceExhausted(err) {
			fmt.Fprintln(stdout, warnStyle.Render(fmt.Sprintf("output exceeds %d byte buffer after %d bytes", opts.capacity, w.Tell())))
		}
		return fmt.Errorf("encode %s: %w", out, err)
	}

	if opts.hex {
		return w.Dump(stdout)
	}
	_, err = stdout.Write(w.Bytes())
	return err
}
