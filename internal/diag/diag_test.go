package diag

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterCollects(t *testing.T) {
	rep := &Reporter{}
	assert.Equal(t, 0, rep.Len())

	d := Diagnostic{Line: 3, Token: "int", ActualColumn: 2, RequiredColumn: 8, Key: KeyIndentationError}
	rep.Report(d)

	require.Equal(t, 1, rep.Len())
	got := rep.Diagnostics()
	assert.Equal(t, []Diagnostic{d}, got)

	// The snapshot is detached from the reporter.
	got[0].Line = 99
	assert.Equal(t, 3, rep.Diagnostics()[0].Line)
}

func TestReporterConcurrent(t *testing.T) {
	rep := &Reporter{}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(line int) {
			defer wg.Done()
			rep.Report(Diagnostic{Line: line, Key: KeyIndentationError})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 16, rep.Len())
}

func TestWriteSummary(t *testing.T) {
	rep := &Reporter{}
	rep.Report(Diagnostic{Line: 2, Token: "int", ActualColumn: 6, RequiredColumn: 8, Key: KeyIndentationError})

	var sb strings.Builder
	rep.WriteSummary(&sb, "Demo.java")

	// Positions render 1-based, indentation levels stay raw columns.
	assert.Equal(t,
		"Demo.java:3:7: \"int\" has incorrect indentation level 6, expected level should be 8 (indentation.error)\n",
		sb.String())
}
