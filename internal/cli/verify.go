package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/ingest"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/model"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/pipeline"
)

var (
	claimName  string
	claimDOB   string
	claimCert  string
	fromHTML   bool
	outJSON    string
	outMD      string
	recognizer string
	metricName string
	threshold  int
	workers    int
	timeout    time.Duration
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Verify claimed identity fields against a document",
	Long: `Verify reads a document (plain text or HTML), extracts entities and
identity patterns from it, and checks the supplied claim fields:
- the claimed name is fuzzy-matched against extracted person names
- the claimed date of birth and certificate number must appear verbatim

Example:
  docverify verify certificate.txt --name "John Smith" --dob 01/02/2020 --cert 12345678
  docverify verify page.html --html --name "John Smith" --json report.json
  docverify verify scan.txt --name "John Smith" --recognizer openai --workers 4`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	// Claim flags
	verifyCmd.Flags().StringVar(&claimName, "name", "", "claimed person name")
	verifyCmd.Flags().StringVar(&claimDOB, "dob", "", "claimed date of birth (as printed, e.g. 01/02/2020)")
	verifyCmd.Flags().StringVar(&claimCert, "cert", "", "claimed 8-digit certificate number")

	// Input flags
	verifyCmd.Flags().BoolVar(&fromHTML, "html", false, "treat the input file as HTML")

	// Output flags
	verifyCmd.Flags().StringVar(&outJSON, "json", "-", "output JSON path (- for stdout)")
	verifyCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional, - for stdout)")

	// Pipeline flags
	verifyCmd.Flags().StringVar(&recognizer, "recognizer", "", "recognition backend (prose, openai)")
	verifyCmd.Flags().StringVar(&metricName, "metric", "", "similarity metric (levenshtein, jaro-winkler)")
	verifyCmd.Flags().IntVar(&threshold, "threshold", 0, "name confidence threshold (default 85)")
	verifyCmd.Flags().IntVar(&workers, "workers", 0, "concurrent extraction workers (default 1, sequential)")
	verifyCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall verification timeout")
}

func runVerify(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	claim := model.FormClaim{Name: claimName, DOB: claimDOB, CertificateNo: claimCert}
	if claim.Empty() {
		fmt.Fprintln(os.Stderr, "Warning: no claim fields supplied; the report will only list extracted entities")
	}

	blocks, err := readBlocks(path, fromHTML)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Document: %s (%d blocks)\n", path, len(blocks))
	}

	// Build configuration from flags over defaults
	cfg := model.DefaultConfig()
	if recognizer != "" {
		cfg.Recognizer.Backend = recognizer
	}
	if metricName != "" {
		cfg.Matcher.Metric = metricName
	}
	if threshold > 0 {
		cfg.Matcher.NameThreshold = threshold
	}
	if workers > 0 {
		cfg.Concurrency.ExtractionWorkers = workers
	}
	cfg.Output.Verbose = verbose

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	report, err := p.Run(ctx, path, blocks, claim)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if verbose {
		total := 0
		for _, texts := range report.Entities {
			total += len(texts)
		}
		fmt.Fprintf(os.Stderr, "Extracted %d entities\n", total)
		fmt.Fprintf(os.Stderr, "Status: %s (%d issues)\n", report.Status, len(report.Issues))
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer()
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	}
	return nil
}

// readBlocks loads the document and splits it into text blocks
func readBlocks(path string, asHTML bool) ([]string, error) {
	if asHTML {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ingest.BlocksFromHTML(f)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ingest.Blocks(string(data)), nil
}
