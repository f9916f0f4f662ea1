package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
)

const article = "Revenue grew 12% in the third quarter as demand for cloud services kept rising. " +
	"The board will meet next week to discuss the schedule for the annual shareholder gathering. " +
	"However, analysts expect growth to slow as higher interest rates weigh on corporate spending. " +
	"The company announced a new policy on emissions that applies to all of its factories."

func TestRunSummarizesStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-n", "2"}, strings.NewReader(article), &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	require.Equal(t,
		"Revenue grew 12% in the third quarter as demand for cloud services kept rising. "+
			"However, analysts expect growth to slow as higher interest rates weigh on corporate spending.\n",
		stdout.String())
}

func TestRunReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.txt")
	require.NoError(t, os.WriteFile(path, []byte(article), 0o600))
	var stdout, stderr bytes.Buffer

	code := run([]string{"-file", path, "-n", "4"}, strings.NewReader(""), &stdout, &stderr)

	require.Equal(t, 0, code)
	require.Equal(t, article+"\n", stdout.String())
}

func TestRunAnalyze(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-analyze", "-n", "2"}, strings.NewReader(article), &stdout, &stderr)

	require.Equal(t, 0, code)
	var analysis summarizer.Analysis
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &analysis))
	require.Len(t, analysis.Sentences, 4)
	require.Equal(t, 2, analysis.Requested)
}

func TestRunFailures(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.Equal(t, 1, run([]string{"-n", "0"}, strings.NewReader(article), &stdout, &stderr))
	require.Contains(t, stderr.String(), "summarization failed")

	require.Equal(t, 1, run([]string{"-file", filepath.Join(t.TempDir(), "missing.txt")}, nil, &stdout, &stderr))
	require.Equal(t, 2, run([]string{"-bogus"}, nil, &stdout, &stderr))
	require.Empty(t, stdout.String())
}
