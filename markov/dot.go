package markov

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteDOT writes the graph in Graphviz DOT form: one line per edge,
// labelled with its probability to two decimals, sorted by (from, to),
// followed by one line per disconnected state so every state is drawn.
//
//	digraph G {
//	    "00" -> "01" [label="0.43"];
//	    "11";
//	}
func (mg *Graph) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	for _, e := range mg.g.Edges() {
		fmt.Fprintf(bw, "    %q -> %q [label=\"%.2f\"];\n", e.From, e.To, e.Weight)
	}
	for _, id := range mg.Disconnected() {
		fmt.Fprintf(bw, "    %q;\n", id)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// WriteDOTFile writes the DOT form of the graph to path, truncating any
// existing file.
func (mg *Graph) WriteDOTFile(path string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("WriteDOTFile(%s): %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteDOTFile(%s): close: %w", path, cerr)
		}
	}()

	if err = mg.WriteDOT(f); err != nil {
		return fmt.Errorf("WriteDOTFile(%s): %w", path, err)
	}

	return nil
}
