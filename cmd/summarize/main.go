// Command summarize prints an extractive summary of an article read from a
// file or stdin.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
	"github.com/yanqian/news-summarizer/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("summarize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "article to summarize (defaults to stdin)")
	count := fs.Int("n", summarizer.DefaultSentenceCount, "number of sentences to keep")
	analyze := fs.Bool("analyze", false, "print every scored sentence as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logger.NewWithWriter(stderr, os.Getenv("LOG_LEVEL"))

	text, err := readInput(*file, stdin)
	if err != nil {
		log.Error("read input failed", "file", *file, "error", err)
		return 1
	}

	if *analyze {
		analysis, err := summarizer.Analyze(text, *count)
		if err != nil {
			log.Error("analysis failed", "error", err)
			return 1
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(analysis); err != nil {
			log.Error("write output failed", "error", err)
			return 1
		}
		return 0
	}

	summary, err := summarizer.Summarize(text, *count)
	if err != nil {
		log.Error("summarization failed", "error", err)
		return 1
	}
	fmt.Fprintln(stdout, summary)
	return 0
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
