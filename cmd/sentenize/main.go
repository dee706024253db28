package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/cognicore/sentenizer/internal/envconfig"
	"github.com/cognicore/sentenizer/internal/extract"
	"github.com/cognicore/sentenizer/pkg/sentenizer"
	"github.com/cognicore/sentenizer/pkg/sentenizer/config"
	"github.com/cognicore/sentenizer/pkg/sentenizer/rules"
	"github.com/cognicore/sentenizer/pkg/sentenizer/store"
	"github.com/cognicore/sentenizer/pkg/sentenizer/store/sqlite"
	"github.com/cognicore/sentenizer/pkg/sentenizer/trace"
)

func main() {
	envCfg, err := envconfig.Load()
	if err != nil {
		log.Fatalf("read environment: %v", err)
	}

	var (
		configPath = flag.String("config", envCfg.ConfigPath, "YAML configuration file (optional)")
		dbPath     = flag.String("db", envCfg.DBPath, "SQLite database with abbreviation tables (optional)")
		window     = flag.Int("window", envCfg.Window, "Context window in code points (0 = default)")
		format     = flag.String("format", envCfg.Format, "Input format: text, html or markdown")
		asJSON     = flag.Bool("json", false, "Print sentences as JSON lines with offsets")
		explain    = flag.Bool("explain", false, "Print the decision taken at every boundary")
		traceRules = flag.Bool("trace", false, "Print every rule evaluation as JSON lines")
		seedDB     = flag.Bool("seed-db", false, "Write the active abbreviation tables into --db and exit")
	)
	flag.Parse()

	ctx := context.Background()

	inputFormat, err := extract.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}

	var recorder *trace.Recorder
	var tracer rules.Tracer
	switch {
	case *traceRules:
		recorder = trace.NewRecorder()
		tracer = recorder
	case envCfg.Debug:
		tracer = trace.NewLogTracer(os.Stderr)
	}

	comp, err := buildSentenizer(ctx, *configPath, *dbPath, *window, tracer)
	if err != nil {
		log.Fatal(err)
	}

	if *seedDB {
		if *dbPath == "" {
			log.Fatal("--db required with --seed-db")
		}
		if err := seedTables(ctx, *dbPath, comp); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %d abbreviation keys to %s", comp.Tables.Len(), *dbPath)
		return
	}

	inputs, err := readInputs(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for _, in := range inputs {
		text, err := extract.Extract(inputFormat, in.data)
		if err != nil {
			log.Printf("Skipping %s: %v", in.name, err)
			continue
		}
		if recorder != nil {
			recorder.Begin()
			recorder.Reset()
		}

		if err := writeResult(out, comp.Sentenizer, text, *asJSON, *explain); err != nil {
			log.Fatal(err)
		}
		if recorder != nil {
			if err := writeTrace(out, recorder.Events()); err != nil {
				log.Fatal(err)
			}
		}
	}
}

func buildSentenizer(ctx context.Context, configPath, dbPath string, window int, tracer rules.Tracer) (*config.Components, error) {
	loader := config.Loader{
		ConfigPath:   configPath,
		TablesDBPath: dbPath,
		Window:       window,
		Tracer:       tracer,
	}

	comp, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return comp, nil
}

func seedTables(ctx context.Context, dbPath string, comp *config.Components) error {
	st, err := sqlite.OpenSQLite(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if err := store.SaveTables(ctx, st, comp.Tables); err != nil {
		return fmt.Errorf("save tables: %w", err)
	}
	return nil
}

type input struct {
	name string
	data []byte
}

func readInputs(paths []string) ([]input, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []input{{name: "stdin", data: data}}, nil
	}

	inputs := make([]input, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read file %s: %w", p, err)
		}
		inputs = append(inputs, input{name: p, data: data})
	}
	return inputs, nil
}

func writeResult(w io.Writer, s *sentenizer.Sentenizer, text string, asJSON, explain bool) error {
	if explain {
		return writeExplain(w, s.Explain(text))
	}

	if asJSON {
		enc := json.NewEncoder(w)
		for _, sent := range s.Segment(text) {
			if err := enc.Encode(sent); err != nil {
				return err
			}
		}
		return nil
	}

	for _, sent := range s.Sentenize(text) {
		line := strings.TrimSpace(sent)
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// writeExplain prints one boundary per line with the left windows
// right-aligned on the display width, so the "|" column lines up.
func writeExplain(w io.Writer, bounds []sentenizer.Boundary) error {
	lefts := make([]string, len(bounds))
	width := 0
	for i, b := range bounds {
		lefts[i] = strconv.Quote(b.Left)
		if n := uniseg.StringWidth(lefts[i]); n > width {
			width = n
		}
	}

	for i, b := range bounds {
		verdict, rule := b.Verdict()
		pad := strings.Repeat(" ", width-uniseg.StringWidth(lefts[i]))
		if _, err := fmt.Fprintf(w, "%6d  %-5s  %-36s  %s%s | %q\n",
			b.Offset, verdict, b.Kind.String()+"/"+rule, pad, lefts[i], b.Right); err != nil {
			return err
		}
	}
	return nil
}

func writeTrace(w io.Writer, events []trace.Event) error {
	enc := json.NewEncoder(w)
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}
