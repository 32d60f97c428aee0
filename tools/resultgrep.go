package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
)

// resultgrep: minimal tool to extract RESULT lines and print them.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: resultgrep <benchmark-log-file>")
		os.Exit(2)
	}
	file := os.Args[1]
	f, err := os.Open(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	r := regexp.MustCompile(`^RESULT\t`) // measurement lines only
	for scanner.Scan() {
		line := scanner.Text()
		if r.MatchString(line) {
			fmt.Println(line)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
