package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"

	"MiniInventory/internal/inventory"
	"MiniInventory/pkg/kit"
)

const service = "inventory-demo"

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, os.Stdout, log); err != nil {
		log.Fatal("demo failed", zap.Error(err))
	}
}

func run(cfg config, out io.Writer, log *zap.Logger) error {
	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	inv := inventory.New(inventory.WithRecorder(kit.NewMetrics(reg, service)))

	log = log.With(zap.String("run_id", uuid.NewString()), zap.String("inventory", inv.ID()))
	log.Info("demo starting", zap.Int("seed_items", len(seed)))

	fmt.Fprintln(out, "Testing Inventory System")

	for _, it := range seed {
		ok, err := inv.AddItem(it)
		if err != nil {
			return fmt.Errorf("add %q: %w", it.Name(), err)
		}
		if !ok {
			log.Warn("item rejected: over capacity",
				zap.String("item", it.Name()),
				zap.Int("weight", it.Weight()),
				zap.Int("current_weight", inv.CurrentWeight()),
			)
		}
	}

	fmt.Fprintf(out, "Current weight: %d/%d\n", inv.CurrentWeight(), inventory.MaxWeight)

	found := inv.SearchItems(cfg.SearchTerm)
	fmt.Fprintf(out, "Found %d items\n", len(found))

	items := inv.Items()
	slices.SortFunc(items, func(a, b inventory.Item) int { return strings.Compare(a.Name(), b.Name()) })
	for _, it := range items {
		fmt.Fprintln(out, it)
	}

	if cfg.PrintMetrics {
		if err := writeMetrics(out, reg); err != nil {
			return err
		}
	}

	log.Info("demo finished", zap.Int("weight", inv.CurrentWeight()), zap.Int("items", len(items)))
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
