package cli

import (
	"fmt"
	"io"
	"strings"
)

type report struct {
	fixture  string
	run      string
	strategy string
	expected int
	actual   int
	messages []string
	err      error
}

func (r *report) write(w io.Writer) error {
	run := r.run
	if run == "" {
		run = "latest"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "fixture:  %s\n", r.fixture)
	fmt.Fprintf(&b, "run:      %s\n", run)
	fmt.Fprintf(&b, "strategy: %s\n", r.strategy)
	fmt.Fprintf(&b, "expected: %d row(s)\n", r.expected)
	fmt.Fprintf(&b, "actual:   %d row(s)\n", r.actual)

	if r.err == nil {
		b.WriteString("result:   PASS\n")
	} else {
		fmt.Fprintf(&b, "result:   FAIL (%d discrepancies)\n", len(r.messages))
		for i, msg := range r.messages {
			fmt.Fprintf(&b, "%3d. %s\n", i+1, msg)
		}
		fmt.Fprintf(&b, "\n%s\n", r.err)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
