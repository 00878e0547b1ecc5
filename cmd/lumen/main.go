// Command lumen lexes, parses, and type-checks a single source file.
package main

import (
	"flag"
	"fmt"
	"os"

	"lumen/pkg/checker"
	"lumen/pkg/driver"
	"lumen/pkg/lexer"
	"lumen/pkg/parser"
)

func main() {
	debugFlag := flag.Bool("debug", false, "trace lexer, parser, and checker stages to stdout")
	lexerFlag := flag.Bool("lexer", false, "stop after lexing and print each scanned token")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: lumen [--debug] [--lexer] <sourcefile>")
		os.Exit(64)
	}

	lexer.DebugEnabled = *debugFlag
	parser.DebugEnabled = *debugFlag
	checker.DebugEnabled = *debugFlag

	sf, err := driver.ReadSourceFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(70)
	}

	if *lexerFlag {
		if err := driver.RunLexerOnly(sf, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(70)
		}
		os.Exit(0)
	}

	result, err := driver.Run(sf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(70)
	}

	fmt.Print(result.ParsedAST)
	fmt.Print(result.CheckedAST)
	fmt.Println("Análise semântica concluída com sucesso.")
	os.Exit(0)
}
