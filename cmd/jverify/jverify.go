// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jverify checks whether a file is a syntactically valid JSON
// document. The verdict is reported through the exit status: 0 for a valid
// document, 1 otherwise, with a diagnostic on stderr. With -tokenize, the
// token stream is printed instead and no verification is performed.
//
// Usage:
//
//	jverify [-tokenize] file.json
//
// A file named "-" means standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/creachadair/jverify"
)

var doTokenize = flag.Bool("tokenize", false, "Print the token stream instead of verifying")

func main() {
	log.SetFlags(0)
	log.SetPrefix("jverify: ")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: jverify [-tokenize] <json-file>")
	}

	in, err := openInput(flag.Arg(0))
	if err != nil {
		log.Fatalf("Opening input: %v", err)
	}
	defer in.Close()

	if *doTokenize {
		s := jverify.NewScanner(in)
		for s.Next() {
			fmt.Println(s.Token())
		}
		if s.Err() != nil {
			log.Fatalf("Tokenize failed: %v", s.Err())
		}
		return
	}

	if err := jverify.Check(in); err != nil {
		log.Printf("Invalid JSON: %v", err)
		os.Exit(1)
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
