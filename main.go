package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"carbonwise/internal/api"
	"carbonwise/internal/config"
	"carbonwise/internal/model"
	"carbonwise/internal/tui"
	"carbonwise/internal/web"
	"carbonwise/internal/workflow"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "carbonwise",
		Repository: "carbonwise-cli",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/carbonwise/carbonwise-cli/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: carbonwise [options] [product-url]\n\n")
		fmt.Fprintf(os.Stderr, "carbonwise estimates the carbon footprint of a product from its store URL.\n")
		fmt.Fprintf(os.Stderr, "It submits the URL to the CarbonWise analysis backend and renders the\n")
		fmt.Fprintf(os.Stderr, "returned sustainability metrics and greener alternatives.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  carbonwise                          # Start TUI mode\n")
		fmt.Fprintf(os.Stderr, "  carbonwise -r https://... -o r.txt  # Save analysis report to file\n")
		fmt.Fprintf(os.Stderr, "  carbonwise --json https://...       # Output the view model as JSON\n")
		fmt.Fprintf(os.Stderr, "  carbonwise --web                    # Local JSON API on :8080\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output the analysis view model as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Print a plain-text analysis report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include the raw spec tables in the report")
	webFlag := pflag.BoolP("web", "w", false, "Start the local web API")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("carbonwise version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	cfg := config.MustLoad()
	client, err := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *webFlag {
		web.StartServer(client, cfg.WebPort)
		return
	}

	if *reportFlag {
		runReportMode(client, pflag.Arg(0), *outputFlag, *verboseFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(client, pflag.Arg(0))
		return
	}

	// Default: TUI
	runTuiMode(client)
}

// analyzeOnce runs the gate → call → map pipeline once, blocking.
// Shared by the one-shot CLI modes; the TUI has its own event-driven
// rendition of the same protocol.
func analyzeOnce(client *api.Client, rawURL string) (*model.AnalysisResult, []model.Recommendation, error) {
	trimmed, err := workflow.ValidateURL(rawURL)
	if err != nil {
		return nil, nil, err
	}

	raw, err := client.Analyze(context.Background(), trimmed)
	if err != nil {
		return nil, nil, err
	}

	return workflow.Map(raw)
}

func runReportMode(client *api.Client, url, outputFile string, verbose bool) {
	result, recs, err := analyzeOnce(client, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report := workflow.GenerateReport(result, recs, verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(report)
	}
}

func runJsonMode(client *api.Client, url string) {
	result, recs, err := analyzeOnce(client, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(struct {
		Result          *model.AnalysisResult
		Recommendations []model.Recommendation
	}{result, recs})
}

func runTuiMode(client *api.Client) {
	m := tui.InitialModel(client)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
