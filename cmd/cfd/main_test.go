package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/cfd-go/pkg/cfd"
	"github.com/ukaji3/cfd-go/pkg/cfd/models"
)

const testChart = `
title: Team flow
data:
  toDo: [Open]
  progress: [Doing]
  done: [Closed]
  entries:
    - {date: 2020-01-01, Open: 10, Doing: 0, Closed: 0}
    - {date: 2020-01-10, Open: 5, Doing: 5, Closed: 10}
`

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.yaml")
	if err := os.WriteFile(path, []byte(testChart), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Cleanup(func() { predict, title = "", "" })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "--predict", "2020-01-01", "--title", "Sprint 4"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	svg := out.String()
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, ">Sprint 4<") {
		t.Errorf("Expected an svg document titled Sprint 4, got %.200s", svg)
	}
	if !strings.Contains(svg, "2020-01-19") {
		t.Error("Expected the projected completion date")
	}
}

func TestApplyFlags(t *testing.T) {
	fromDate, toDate = "2020-01-02", "2020/01/09"
	t.Cleanup(func() { fromDate, toDate = "", "" })

	cfg := &cfd.Config{}
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags failed: %v", err)
	}
	if cfg.FromDate == nil || !cfg.FromDate.Equal(models.NewDate(2020, 1, 2)) {
		t.Errorf("Expected fromDate 2020-01-02, got %v", cfg.FromDate)
	}
	if cfg.ToDate == nil || !cfg.ToDate.Equal(models.NewDate(2020, 1, 9)) {
		t.Errorf("Expected toDate 2020-01-09, got %v", cfg.ToDate)
	}
	if cfg.Predict != nil {
		t.Errorf("Expected predict to stay unset, got %v", cfg.Predict)
	}

	toDate = "next week"
	if err := applyFlags(cfg); err == nil || !strings.Contains(err.Error(), "--to") {
		t.Errorf("Expected an invalid --to error, got %v", err)
	}
}

func TestRenderChartFormat(t *testing.T) {
	var out bytes.Buffer
	err := renderChart(cfd.New(&cfd.Config{}), "gif", &out)
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("Expected an invalid format error, got %v", err)
	}
}
