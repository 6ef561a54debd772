package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/shadycyan/urlcanon/internal/canon"
	"github.com/shadycyan/urlcanon/internal/domain"
	"github.com/shadycyan/urlcanon/internal/safemap"
	"golang.org/x/sync/singleflight"
)

type config struct {
	base     *canon.URL
	results  *safemap.SafeMap[string, result]
	wg       *sync.WaitGroup
	sem      chan struct{}
	seed     bool
	showSURT bool
	showFrag bool
}

type result struct {
	url    string
	surt   string
	domain string
	frag   string
}

var parseGroup singleflight.Group

const (
	greenColor = "\033[32m"
	resetColor = "\033[0m"
)

func main() {
	baseURL := flag.String("base", "", "Base URL to resolve relative links against")
	seed := flag.Bool("seed", false, "Treat inputs as seed-list entries (scheme optional)")
	redirects := flag.Bool("redirects", false, "Classify 'origin destination' pairs instead of canonicalizing")
	maxConcurrency := flag.Int("max-concurrency", 5, "Maximum number of concurrent canonicalizations")
	showSURT := flag.Bool("surt", false, "Include the SURT key in the report")
	showFrag := flag.Bool("print-frag", false, "Include the original fragment in the report")
	privateSuffixes := flag.Bool("private-suffixes", true, "Count PSL private-section rules as suffixes")
	verbose := flag.Bool("v", false, "Log discarded inputs")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	domain.IncludePrivateSuffixes(*privateSuffixes)

	lines, err := readInputs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read inputs: %s\n", err)
		os.Exit(1)
	}

	if *redirects {
		classifyRedirects(lines)
		return
	}

	var base *canon.URL
	if *baseURL != "" {
		base, err = canon.Parse(*baseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse base URL: %s\n", err)
			os.Exit(1)
		}
	}

	cfg := config{
		base:     base,
		results:  safemap.New[string, result](),
		wg:       &sync.WaitGroup{},
		sem:      make(chan struct{}, *maxConcurrency),
		seed:     *seed,
		showSURT: *showSURT,
		showFrag: *showFrag,
	}

	var droppedMu sync.Mutex
	dropped := 0
	for _, line := range lines {
		cfg.wg.Add(1)

		go func() {
			defer cfg.wg.Done()
			if !cfg.processLink(line) {
				droppedMu.Lock()
				dropped++
				droppedMu.Unlock()
			}
		}()
	}
	cfg.wg.Wait()
	close(cfg.sem)

	cfg.printReport(dropped)
}

func readInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func (cfg *config) processLink(raw string) bool {
	cfg.sem <- struct{}{}
	defer func() { <-cfg.sem }()

	v, err, _ := parseGroup.Do(raw, func() (interface{}, error) {
		if cfg.seed {
			return canon.ParseSeed(raw)
		}
		return canon.ParseWithBase(raw, cfg.base)
	})
	if err != nil {
		slog.Info("dropping input", "link", raw, "error", err)
		return false
	}

	u := v.(*canon.URL)
	cfg.results.SetIfAbsent(u.String(), result{
		url:    u.String(),
		surt:   u.SURT(),
		domain: u.RegisteredDomain(),
		frag:   u.OriginalFrag(),
	})
	return true
}

func classifyRedirects(lines []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
	defer func() {
		if err := w.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to flush writer: %v\n", err)
		}
	}()

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Fprintf(os.Stderr, "%s\n", &inputError{lineNo: i + 1, line: line, reason: "want 'origin destination'"})
			continue
		}

		origin, err := canon.Parse(fields[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", &inputError{lineNo: i + 1, line: line, reason: err.Error()})
			continue
		}
		next, err := canon.Parse(fields[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", &inputError{lineNo: i + 1, line: line, reason: err.Error()})
			continue
		}

		label := string(canon.ClassifyRedirect(origin, next))
		if label == "" {
			label = "unclassified"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", origin, next, label)
	}
}

func (cfg *config) printReport(dropped int) {
	results := cfg.results.Values()

	// the whole point of surt keys: sorting by them groups sites
	sort.Slice(results, func(i, j int) bool { return results[i].surt < results[j].surt })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
	defer func() {
		if err := w.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to flush writer: %v\n", err)
		}
	}()

	fmt.Fprintf(w, "%s\n", greenColor)

	fmt.Fprintf(w, "URL\tDomain")
	if cfg.showSURT {
		fmt.Fprintf(w, "\tSURT")
	}
	if cfg.showFrag {
		fmt.Fprintf(w, "\tFragment")
	}
	fmt.Fprintf(w, "\n")

	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s", r.url, r.domain)
		if cfg.showSURT {
			fmt.Fprintf(w, "\t%s", r.surt)
		}
		if cfg.showFrag {
			fmt.Fprintf(w, "\t%s", r.frag)
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "%s\n", resetColor)

	if dropped > 0 {
		fmt.Fprintf(os.Stderr, "dropped %d unusable input(s)\n", dropped)
	}
}
