package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/EmpoweredVote/emotodo-seed/emotions"
	"github.com/EmpoweredVote/emotodo-seed/config"
	"github.com/EmpoweredVote/emotodo-seed/seeds"
	"github.com/EmpoweredVote/emotodo-seed/store"
)

func main() {
	_ = godotenv.Load(".env.local")
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		backend      = fs.String("backend", "", "firestore, postgres or memory (default: env SEED_BACKEND, else firestore)")
		dsn          = fs.String("dsn", "", "Postgres DSN (default: env DATABASE_URL)")
		printCatalog = fs.Bool("print-catalog", false, "Write the emotion catalog as YAML to stdout and exit")
		writeRate    = fs.Float64("write-rate", 0, "Max upserts per second. 0 = unlimited")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *printCatalog {
		if err := emotions.WriteYAML(stdout, seeds.Collection, emotions.Catalog()); err != nil {
			fmt.Fprintf(stderr, "❌ %v\n", err)
			return 1
		}
		return 0
	}

	cfg := config.LoadFromEnv()
	if *backend != "" {
		cfg.Backend = config.Backend(strings.ToLower(*backend))
	}
	if *dsn != "" {
		cfg.DatabaseURL = *dsn
	}

	logger := log.New(stdout, "", log.LstdFlags)
	if keys := cfg.UsingDemoDefaults(); len(keys) > 0 && cfg.Backend == config.BackendFirestore {
		logger.Printf("⚠️  Using demo values for: %s", strings.Join(keys, ", "))
	}

	st, err := store.Open(ctx, cfg)
	if err != nil {
		return fail(stderr, err)
	}
	defer st.Close()
	logger.Printf("📦 Connected to %s", cfg.Backend)

	s := seeds.New(st, seeds.WithLogger(logger), seeds.WithWriteRate(*writeRate))
	res, err := s.Run(ctx)
	if err != nil {
		return fail(stderr, err)
	}

	if !res.ShortCircuited {
		logger.Println("📊 Emotion summary:")
		for _, g := range emotions.Summarize(emotions.Catalog()) {
			logger.Printf("   - %s", g)
		}
	}
	logger.Println("🎯 Emotion catalog ready")
	return 0
}

// fail prints err with hints for the failure class and returns the exit code.
func fail(w io.Writer, err error) int {
	var verr *seeds.VerificationError
	if errors.As(err, &verr) && verr.Err == nil {
		fmt.Fprintf(w, "❌ FAILED: %v\n", err)
		return 1
	}

	fmt.Fprintf(w, "❌ ERROR seeding emotions: %v\n", err)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "🔧 Troubleshooting:")
	fmt.Fprintln(w, "   1. Check the store configuration in environment variables (.env.local)")
	fmt.Fprintln(w, "   2. Ensure the Firestore emulator is running: firebase emulators:start")
	fmt.Fprintln(w, "   3. Verify Firestore is enabled in the project, or DATABASE_URL is reachable")
	fmt.Fprintln(w, "   4. Check network connectivity")
	return 1
}
