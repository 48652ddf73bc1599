package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/xmldoc"
)

type cmdopts struct {
	Encoding      string `long:"encoding" description:"start decoding with this encoding label"`
	KeepSpace     bool   `long:"keep-space" description:"do not trim whitespace around text nodes"`
	NoRequireDecl bool   `long:"no-require-decl" description:"allow documents without an XML declaration"`
	Version       bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xmldoc-lint: using xmldoc version %s\n", xmldoc.Version)
}

func showUsage() {
	fmt.Printf(`Usage : xmldoc-lint [options] XMLfiles ...
	Parse the XML files and report the result of the parsing
	--version : display the version of the XML library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	ropts := xmldoc.DefaultReadOptions()
	ropts.TrimText = !opts.KeepSpace
	ropts.RequireDecl = !opts.NoRequireDecl
	ropts.Encoding = opts.Encoding

	if len(args) == 0 {
		stat, err := os.Stdin.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			showUsage()
			return 1
		}
		return lint("(stdin)", os.Stdin, ropts)
	}

	for _, f := range args {
		fh, err := os.Open(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		ret := lint(f, fh, ropts)
		fh.Close()
		if ret != 0 {
			return ret
		}
	}
	return 0
}

func lint(name string, in io.Reader, opts xmldoc.ReadOptions) int {
	doc, err := xmldoc.ParseReaderWithOptions(in, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
		return 1
	}

	root, ok := doc.RootElement()
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: no root element\n", name)
		return 1
	}
	fmt.Printf("%s: ok (root <%s>, %d children)\n", name, root.Name(doc), len(root.Children(doc)))
	return 0
}
