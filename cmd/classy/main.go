package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/mb0/xelf/bfr"
	"github.com/mb0/xelf/cor"

	"github.com/martijnschouwe/classy-enum/enum"
	"github.com/martijnschouwe/classy-enum/gen/gengo"
	"github.com/martijnschouwe/classy-enum/gen/genpg"
	"github.com/martijnschouwe/classy-enum/log"
)

const usage = `usage: classy [-out=<path>] <command> [<args>]

Configuration flags:

   -out        The output file path. Output is printed to stdout if this flag is not set.

Code generation commands
   gengo       Generate go declarations for a set declaration file
               args: <pkg> <file>
   genpg       Generate postgres enum types for a set declaration file
               args: <file>

Other commands
   list        List the sets of a declaration file with their constants
   help        Display help message
`

var outFlag = flag.String("out", "", "output file path")

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		log.Root.Error("missing command")
		fmt.Print(usage)
		os.Exit(1)
	}
	var err error
	switch cmd := args[0]; cmd {
	case "gengo":
		err = gogen(args[1:])
	case "genpg":
		err = pggen(args[1:])
	case "list":
		err = list(args[1:])
	case "help":
		fmt.Print(usage)
	default:
		log.Root.Error("unknown command", "cmd", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
	if err != nil {
		log.Root.Error(err.Error(), "cmd", args[0])
		os.Exit(1)
	}
}

func sets(path string) ([]*enum.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cor.Errorf("open declaration file: %w", err)
	}
	defer f.Close()
	return enum.ReadSets(f)
}

func gogen(args []string) error {
	if len(args) < 2 {
		return cor.Error("expects package path and declaration file")
	}
	ss, err := sets(args[1])
	if err != nil {
		return err
	}
	var b strings.Builder
	c := gengo.NewCtx(args[0])
	c.Ctx = bfr.Ctx{B: &b, Tab: "\t"}
	err = gengo.RenderFile(c, ss...)
	if err != nil {
		return err
	}
	return write(b.String())
}

func pggen(args []string) error {
	if len(args) < 1 {
		return cor.Error("expects declaration file")
	}
	ss, err := sets(args[0])
	if err != nil {
		return err
	}
	var b strings.Builder
	err = genpg.WriteFile(genpg.NewCtx(&b), ss...)
	if err != nil {
		return err
	}
	return write(b.String())
}

func list(args []string) error {
	if len(args) < 1 {
		return cor.Error("expects declaration file")
	}
	ss, err := sets(args[0])
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, s := range ss {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	return write(b.String())
}

func write(res string) error {
	if *outFlag == "" {
		fmt.Print(res)
		return nil
	}
	return ioutil.WriteFile(*outFlag, []byte(res), 0644)
}
