package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	cdecl "github.com/paul-j-lucas/cdecl-sub001"
)

type args struct {
	lang        *string
	inputPath   *string
	interactive *bool
	dymEnabled  *bool
	macroTrace  *bool
}

func readArgs() *args {
	a := &args{
		lang:        flag.String("lang", "c99", "Language standard to check declarations against (c89, c99, c11, c++17, ...)"),
		inputPath:   flag.String("input", "", "Path to a file of cdecl commands to run non-interactively"),
		interactive: flag.Bool("interactive", true, "Drop into the interactive shell"),
		dymEnabled:  flag.Bool("dym", true, "Enable did-you-mean suggestions on unknown identifiers"),
		macroTrace:  flag.Bool("macro-trace", false, "Print each macro-expansion step with `expand`"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	lang := cdecl.LangFind(*a.lang)
	if lang == cdecl.LangNone {
		log.Fatalf("unknown language %q", *a.lang)
	}

	sess := cdecl.NewSession(lang)
	defer sess.Close()
	sess.Config.SetBool("dym.enabled", *a.dymEnabled)
	sess.Config.SetBool("macro.trace", *a.macroTrace)

	if *a.inputPath != "" {
		f, err := os.Open(*a.inputPath)
		if err != nil {
			log.Fatalf("can't open input file: %s", err.Error())
		}
		defer f.Close()
		runLines(sess, bufio.NewScanner(f), os.Stdout, false)
		return
	}

	if *a.interactive {
		runLines(sess, bufio.NewScanner(os.Stdin), os.Stdout, true)
	}
}

// runLines drives the command loop, reading one command per line
// (§6's CLI surface: declare/explain/cast/expand/define/undefine,
// plus help/quit for shell usability). prompt controls whether "cdecl> "
// is printed before each read, matching the teacher's interactive flag.
func runLines(sess *cdecl.Session, sc *bufio.Scanner, out *os.File, prompt bool) {
	for {
		if prompt {
			fmt.Fprint(out, "cdecl> ")
		}
		if !sc.Scan() {
			fmt.Fprintln(out)
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if quit := dispatch(sess, line, out); quit {
			return
		}
	}
}

// dispatch runs one command line, reporting quit=true for
// `quit`/`exit`/`q`.
func dispatch(sess *cdecl.Session, line string, out *os.File) (quit bool) {
	fields := strings.Fields(line)
	cmd, ok := cdecl.ResolveCdeclCommand(fields[0])
	if !ok {
		suggestCommand(fields[0], out)
		return false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	switch cmd {
	case "quit":
		return true

	case "help":
		printHelp(out)

	case "explain":
		english, err := sess.Explain(rest)
		report(out, english, err)

	case "declare":
		name, english, ok := splitAs(rest)
		if !ok {
			fmt.Fprintln(out, "usage: declare <name> as <english type>")
			return false
		}
		gibberish, err := sess.Declare(name, english)
		report(out, gibberish, err)

	case "cast":
		expr, typeSpec, kind, ok := splitCast(rest)
		if !ok {
			fmt.Fprintln(out, "usage: cast <expr> into <type>  (or: static_cast/dynamic_cast/reinterpret_cast/const_cast <expr> into <type>)")
			return false
		}
		explanation, err := sess.Cast(expr, typeSpec, kind)
		report(out, explanation, err)

	case "expand":
		result, trace, err := sess.ExpandText(rest)
		if trace != nil {
			for _, step := range trace.Steps {
				fmt.Fprintf(out, "  %s: %s -> %s\n", step.MacroName, step.Before, step.After)
			}
		}
		report(out, result, err)

	case "define":
		if err := defineMacro(sess, rest); err != nil {
			fmt.Fprintln(out, err.Error())
		}

	case "undefine":
		sess.Undef(strings.TrimSpace(rest))

	case "show":
		for _, name := range sess.Macros.Names() {
			fmt.Fprintln(out, name)
		}

	case "set":
		fmt.Fprintln(out, "the `set` options store is out of scope; use -lang, -dym, -macro-trace flags")
	}
	return false
}

func report(out *os.File, result string, err error) {
	if err != nil {
		fmt.Fprintln(out, "ERROR: "+err.Error())
		return
	}
	fmt.Fprintln(out, result)
}

func suggestCommand(word string, out *os.File) {
	sugg := cdecl.SuggestCommand(word, 1)
	if len(sugg) == 0 {
		fmt.Fprintf(out, "unknown command %q\n", word)
		return
	}
	fmt.Fprintf(out, "unknown command %q; did you mean %q?\n", word, sugg[0].Word)
}

func printHelp(out *os.File) {
	fmt.Fprintln(out, `commands:
  explain <declaration>                explain a C/C++ declaration in English
  declare <name> as <english type>     render an English type phrase as a C/C++ declaration
  cast <expr> into <type>              explain a cast expression
  expand <text>                        macro-expand text
  define <name>[(params)] <body>       define an object-like or function-like macro
  undefine <name>                      remove a macro definition
  show                                 list defined macro names
  help                                 show this message
  quit                                 exit the shell`)
}

// splitAs splits "name as english..." for the declare command.
func splitAs(rest string) (name, english string, ok bool) {
	fields := strings.Fields(rest)
	if len(fields) < 3 || fields[1] != "as" {
		return "", "", false
	}
	return fields[0], strings.TrimSpace(strings.Join(fields[2:], " ")), true
}

// splitCast splits "[kind] expr into type" for the cast command.
func splitCast(rest string) (expr, typeSpec string, kind cdecl.CastKind, ok bool) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", "", 0, false
	}
	kind = cdecl.CastC
	start := 0
	switch fields[0] {
	case "static_cast":
		kind, start = cdecl.CastStatic, 1
	case "dynamic_cast":
		kind, start = cdecl.CastDynamic, 1
	case "reinterpret_cast":
		kind, start = cdecl.CastReinterpret, 1
	case "const_cast":
		kind, start = cdecl.CastConst, 1
	}
	idx := -1
	for i := start; i < len(fields); i++ {
		if fields[i] == "into" {
			idx = i
			break
		}
	}
	if idx < 0 || idx == start {
		return "", "", 0, false
	}
	expr = strings.Join(fields[start:idx], " ")
	typeSpec = strings.Join(fields[idx+1:], " ")
	if expr == "" || typeSpec == "" {
		return "", "", 0, false
	}
	return expr, typeSpec, kind, true
}

// defineMacro parses `define NAME(params...) body` or `define NAME body`
// into a Session.Define call, recognizing a trailing `...`/`name...`
// variadic parameter per §4.7.
func defineMacro(sess *cdecl.Session, rest string) error {
	name, afterName, ok := splitWord(rest)
	if !ok {
		return fmt.Errorf("usage: define <name>[(params)] <replacement text>")
	}
	if !strings.HasPrefix(afterName, "(") {
		return sess.Define(name, false, nil, false, "", strings.TrimSpace(afterName))
	}
	closeParen := strings.Index(afterName, ")")
	if closeParen < 0 {
		return fmt.Errorf("unterminated parameter list in macro %q", name)
	}
	paramText := afterName[1:closeParen]
	body := strings.TrimSpace(afterName[closeParen+1:])

	var params []string
	variadic, variadicName := false, ""
	for _, p := range strings.Split(paramText, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == "..." {
			variadic = true
			continue
		}
		if strings.HasSuffix(p, "...") {
			variadic = true
			variadicName = strings.TrimSuffix(p, "...")
			continue
		}
		params = append(params, p)
	}
	return sess.Define(name, true, params, variadic, variadicName, body)
}

// splitWord splits s into its first whitespace-delimited word and the
// (untrimmed) remainder, so a macro name can be glued directly to its
// `(` with no intervening space.
func splitWord(s string) (word, rest string, ok bool) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t(")
	if i < 0 {
		if s == "" {
			return "", "", false
		}
		return s, "", true
	}
	return s[:i], s[i:], true
}
