package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"MiniInventory/internal/inventory"
)

type seedEntry struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

type seedDoc struct {
	Items []seedEntry `yaml:"items"`
}

var defaultSeed = []seedEntry{
	{Name: "Sword", Weight: 10},
	{Name: "Shield", Weight: 15},
	{Name: "Potion", Weight: 2},
}

func loadSeed(path string) ([]inventory.Item, error) {
	if path == "" {
		return toItems(defaultSeed)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	return readSeed(f)
}

func readSeed(r io.Reader) ([]inventory.Item, error) {
	var doc seedDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return toItems(doc.Items)
}

func toItems(entries []seedEntry) ([]inventory.Item, error) {
	out := make([]inventory.Item, 0, len(entries))
	for i, e := range entries {
		it, err := inventory.NewItem(e.Name, e.Weight)
		if err != nil {
			return nil, fmt.Errorf("seed item %d: %w", i, err)
		}
		out = append(out, it)
	}
	return out, nil
}
