// Package cli implements the interactive nutridex shell.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"

	"github.com/hupe1980/nutridex"
	"github.com/hupe1980/nutridex/blobstore"
	"github.com/hupe1980/nutridex/dataset"
	"github.com/hupe1980/nutridex/model"
)

// Cli reads commands line by line and runs them against a store.
type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	store   *nutridex.Store
	blobs   blobstore.BlobStore
	metrics *nutridex.BasicMetricsCollector

	info *color.Color
	warn *color.Color
}

// NewCli creates a shell. metrics may be nil.
func NewCli(s *bufio.Scanner, out io.Writer, store *nutridex.Store, blobs blobstore.BlobStore, metrics *nutridex.BasicMetricsCollector) *Cli {
	return &Cli{
		scanner: s,
		out:     out,
		store:   store,
		blobs:   blobs,
		metrics: metrics,
		info:    color.New(color.FgGreen),
		warn:    color.New(color.FgRed),
	}
}

// Start prints the help text and processes input until EOF or "exit".
func (c *Cli) Start(ctx context.Context) error {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.Exec(ctx, c.scanner.Text()) {
			return nil
		}
		c.printPrompt()
	}
	return c.scanner.Err()
}

func (c *Cli) printHelp() {
	fmt.Fprint(c.out, `
Nutridex CLI

Available Commands:
  LOAD <file>...                  Load record files (.csv, .json, optionally .zst/.lz4/.sz)
  SAVE <file>                     Save all records, sorted by name
  FILES [prefix]                  List files in the blob store
  LIST                            Show all records
  NAME <substring>                Records whose name contains substring
  FILTER <rule>[; <rule>...]      Records matching every rule, e.g. "fat <= 10; protein >= 5"
  QUERY <substring> | <rules>     Combine a name and rule filter
  ADD <name> <attr>=<value>...    Add a record; every attribute is required
  SEED <n>                        Add n random records
  TREE <attribute>                Print the index of an attribute
  STATS                           Show index and operation statistics
  HELP                            Show this text
  EXIT                            Terminate this session
`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// Exec runs one command line. It returns false when the session should end.
func (c *Cli) Exec(ctx context.Context, line string) bool {
	command, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	if command == "" {
		return true
	}
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(command) {
	default:
		c.warn.Fprintf(c.out, "Unknown command %q\n", command)
	case "help":
		c.printHelp()
	case "load":
		c.processLoadCommand(ctx, strings.Fields(rest))
	case "save":
		c.processSaveCommand(ctx, strings.Fields(rest))
	case "files":
		c.processFilesCommand(ctx, rest)
	case "list":
		c.printRecords(c.store.All())
	case "name":
		c.printRecords(c.store.FilterByName(rest))
	case "filter":
		c.processFilterCommand(rest)
	case "query":
		c.processQueryCommand(rest)
	case "add":
		c.processAddCommand(strings.Fields(rest))
	case "seed":
		c.processSeedCommand(strings.Fields(rest))
	case "tree":
		c.processTreeCommand(strings.Fields(rest))
	case "stats":
		c.printStats()
	case "exit", "quit":
		return false
	}
	return true
}

func (c *Cli) processLoadCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage: LOAD <file>...")
		return
	}
	report, err := dataset.Load(ctx, c.blobs, c.store, args)
	if err != nil {
		c.warn.Fprintf(c.out, "Load failed: %v\n", err)
		return
	}
	c.info.Fprintf(c.out, "Loaded %d records from %d files (%d skipped, %d duplicates).\n",
		report.Loaded, report.Files, report.Skipped, report.Duplicates)
}

func (c *Cli) processSaveCommand(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: SAVE <file>")
		return
	}
	if err := dataset.Save(ctx, c.blobs, c.store, args[0]); err != nil {
		c.warn.Fprintf(c.out, "Save failed: %v\n", err)
		return
	}
	c.info.Fprintf(c.out, "Saved %d records to %s.\n", c.store.Len(), args[0])
}

func (c *Cli) processFilesCommand(ctx context.Context, prefix string) {
	names, err := c.blobs.List(ctx, prefix)
	if err != nil {
		c.warn.Fprintf(c.out, "List failed: %v\n", err)
		return
	}
	if len(names) == 0 {
		fmt.Fprintln(c.out, "No files.")
		return
	}
	for _, name := range names {
		fmt.Fprintln(c.out, name)
	}
}

func (c *Cli) processFilterCommand(arg string) {
	rules := splitRules(arg)
	if len(rules) == 0 {
		fmt.Fprintln(c.out, "Usage: FILTER <rule>[; <rule>...]")
		return
	}
	recs, err := c.store.FilterByRules(rules)
	if err != nil {
		c.warn.Fprintf(c.out, "Filter failed: %v\n", err)
		return
	}
	c.printRecords(recs)
}

func (c *Cli) processQueryCommand(arg string) {
	name, rules, _ := strings.Cut(arg, "|")
	q := nutridex.Query{
		Name:  strings.TrimSpace(name),
		Rules: splitRules(rules),
	}
	recs, err := c.store.Query(q)
	if err != nil {
		c.warn.Fprintf(c.out, "Query failed: %v\n", err)
		return
	}
	c.printRecords(recs)
}

// processAddCommand treats trailing attr=value tokens as nutrients and the
// tokens before them as the name.
func (c *Cli) processAddCommand(args []string) {
	i := len(args)
	for i > 0 && strings.Contains(args[i-1], "=") {
		i--
	}
	if i == 0 {
		fmt.Fprintln(c.out, "Usage: ADD <name> <attr>=<value>...")
		return
	}

	b := model.NewRecord(dataset.NewID(), strings.Join(args[:i], " "))
	for _, arg := range args[i:] {
		attr, raw, _ := strings.Cut(arg, "=")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.warn.Fprintf(c.out, "Invalid value %q for %s\n", raw, attr)
			return
		}
		b.WithNutrient(attr, v)
	}
	rec := b.Build()

	for _, attr := range c.store.Attributes() {
		if _, ok := rec.Value(attr); !ok {
			c.warn.Fprintf(c.out, "Missing attribute %s\n", attr)
			return
		}
	}

	if err := c.store.AddRecord(rec); err != nil {
		c.warn.Fprintf(c.out, "Add failed: %v\n", err)
		return
	}
	c.store.SortByName()
	c.info.Fprintf(c.out, "Added %s (%s).\n", rec.Name, rec.ID)
}

func (c *Cli) processSeedCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: SEED <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		c.warn.Fprintf(c.out, "Invalid count %q\n", args[0])
		return
	}

	recs := make([]*model.Record, n)
	for i := range recs {
		b := model.NewRecord(dataset.NewID(), faker.Word()+" "+faker.Word())
		for _, attr := range c.store.Attributes() {
			b.WithNutrient(attr, float64(rand.IntN(1000))/10)
		}
		recs[i] = b.Build()
	}

	if err := c.store.AddRecords(recs); err != nil {
		c.warn.Fprintf(c.out, "Seed failed: %v\n", err)
		return
	}
	c.info.Fprintf(c.out, "Seeded %d records.\n", n)
}

func (c *Cli) processTreeCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: TREE <attribute>")
		return
	}
	tree, ok := c.store.Index(args[0])
	if !ok {
		c.warn.Fprintf(c.out, "Unknown attribute %q\n", args[0])
		return
	}
	fmt.Fprintf(c.out, "height=%d keys=%d values=%d\n", tree.Height(), tree.KeyCount(), tree.Len())
	fmt.Fprint(c.out, tree)
}

func (c *Cli) printStats() {
	st := c.store.Stats()
	fmt.Fprintf(c.out, "records=%d chunks=%d\n", st.Records, st.Chunks)

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ATTRIBUTE\tVALUES\tKEYS\tHEIGHT")
	for _, attr := range c.store.Attributes() {
		ix := st.Indexes[attr]
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", attr, ix.Values, ix.Keys, ix.Height)
	}
	_ = w.Flush()

	if c.metrics != nil {
		m := c.metrics.GetStats()
		fmt.Fprintf(c.out, "inserts=%d (errors=%d) filters=%d (errors=%d) avg_filter=%dns\n",
			m.InsertCount, m.InsertErrors, m.FilterCount, m.FilterErrors, m.FilterAvgNanos)
	}
}

func (c *Cli) printRecords(recs []*model.Record) {
	attrs := c.store.Attributes()

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "ID\tNAME")
	for _, attr := range attrs {
		fmt.Fprintf(w, "\t%s", strings.ToUpper(attr))
	}
	fmt.Fprintln(w)

	for _, rec := range recs {
		fmt.Fprintf(w, "%s\t%s", rec.ID, rec.Name)
		for _, attr := range attrs {
			if v, ok := rec.Value(attr); ok {
				fmt.Fprintf(w, "\t%s", strconv.FormatFloat(v, 'f', -1, 64))
			} else {
				fmt.Fprint(w, "\t-")
			}
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()

	c.info.Fprintf(c.out, "%d of %d records.\n", len(recs), c.store.Len())
}

func splitRules(arg string) []string {
	var rules []string
	for _, r := range strings.Split(arg, ";") {
		if r = strings.TrimSpace(r); r != "" {
			rules = append(rules, r)
		}
	}
	return rules
}
