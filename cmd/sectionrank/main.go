package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sectionrank/sectionrank/internal/api"
	"github.com/sectionrank/sectionrank/internal/config"
	"github.com/sectionrank/sectionrank/internal/embed"
	"github.com/sectionrank/sectionrank/internal/pipeline"
	"github.com/sectionrank/sectionrank/internal/report"
)

var (
	numResults int
	inputJSON  string
	pdfFolder  string
	outputJSON string
	serve      bool
	addr       string
)

var rootCmd = &cobra.Command{
	Use:   "sectionrank",
	Short: "Rank document sections against a persona and job to be done",
	Long: `sectionrank infers a structural outline for each document in a folder,
segments the documents into sections, and ranks the sections against a
persona + job-to-be-done intent using embedding-based retrieval.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVar(&numResults, "num_results", 5, "Number of top results to extract and analyze")
	rootCmd.Flags().StringVar(&inputJSON, "input_json", "input.json", "Path to the input JSON configuration file")
	rootCmd.Flags().StringVar(&pdfFolder, "pdf_folder", "pdfs", "Path to the folder containing the documents")
	rootCmd.Flags().StringVar(&outputJSON, "output_json", "output.json", "Path for the output JSON results file")
	rootCmd.Flags().BoolVar(&serve, "serve", false, "Run as an HTTP service instead of a one-shot CLI")
	rootCmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address in serve mode")
}

func run(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	embedder := embed.NewOpenAI(embed.Config{
		APIKey:     cfg.EmbeddingAPIKey,
		BaseURL:    cfg.EmbeddingBaseURL,
		Model:      cfg.EmbeddingModel,
		Dimensions: cfg.EmbeddingDimensions,
	})
	pipe := pipeline.New(embedder, cfg.TopK, log)

	if serve {
		return runServer(pipe, cfg, log)
	}

	input, err := pipeline.LoadInput(inputJSON)
	if err != nil {
		return fmt.Errorf("load input config: %w", err)
	}

	out, err := pipe.Run(context.Background(), pipeline.Request{
		Input:      input,
		Folder:     pdfFolder,
		NumResults: numResults,
	})
	if err != nil {
		return err
	}
	if out == nil {
		// Early stop; the reason was already logged.
		return nil
	}

	if err := report.Write(outputJSON, out); err != nil {
		return err
	}

	log.Info("output saved",
		"path", outputJSON,
		"documents", len(out.Metadata.InputDocuments),
		"sections", len(out.ExtractedSections),
		"subsections", len(out.SubsectionAnalysis),
	)
	return nil
}

func runServer(pipe *pipeline.Pipeline, cfg config.Config, log *slog.Logger) error {
	srv := api.NewServer(pipe, pdfFolder, numResults, cfg.APIKey, log)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting sectionrank", "addr", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
