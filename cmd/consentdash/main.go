package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"consentdash/internal/api"
	"consentdash/internal/telemetry"
	"consentdash/internal/ui"
	"consentdash/internal/wallet"
)

func main() {
	apiURL := flag.String("api", envOr("CONSENTDASH_API", "http://localhost:3001/api"), "consent ledger API base URL")
	keyHex := flag.String("key", os.Getenv("CONSENTDASH_KEY"), "hex-encoded wallet key (omit for read-only mode)")
	flag.Parse()

	ctx := context.Background()
	exporter, err := telemetry.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry setup: %v\n", err)
		os.Exit(1)
	}
	defer exporter.Shutdown(ctx)

	var signer wallet.Signer
	if *keyHex != "" {
		ks, err := wallet.NewKeySigner(*keyHex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wallet: %v\n", err)
			os.Exit(1)
		}
		signer = ks
	}

	client := api.New(*apiURL, api.WithTracer(exporter.Tracer()))
	model := ui.NewAppModel(ui.Deps{Client: client, Signer: signer}).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
