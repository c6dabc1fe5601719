package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("LEDGER_LOG_FILE", filepath.Join(dir, "debug.log"))
	t.Setenv("LEDGER_EXPORT_DIR", dir)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", filepath.Join(dir, "missing.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestSummaryCommand(t *testing.T) {
	seed := writeSeed(t, testSeed)
	out, err := runCmd(t, "summary", "--seed", seed, "--month", "10/2026")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, want := range []string{"Outubro de 2026", "Salário", "3.000,00", "Aluguel", "-1.500,50", "Saldo Atual do Mês"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Mercado") {
		t.Errorf("September row shown in October:\n%s", out)
	}
}

func TestSummaryCommandBadMonth(t *testing.T) {
	if _, err := runCmd(t, "summary", "--month", "13/2026"); err == nil {
		t.Error("expected an error for month 13")
	}
}

func TestExportCommand(t *testing.T) {
	seed := writeSeed(t, testSeed)
	outDir := t.TempDir()
	out, err := runCmd(t, "export", "--seed", seed, "--month", "09/2026", "--dir", outDir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, name := range []string{"ledger-09-2026.xlsx", "ledger-09-2026.png"} {
		if !strings.Contains(out, name) {
			t.Errorf("output does not name %s:\n%s", name, out)
		}
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestInvalidConfigFails(t *testing.T) {
	t.Setenv("LEDGER_GRAPH_MODE", "stacked")
	_, err := runCmd(t, "summary")
	if err == nil || !strings.Contains(err.Error(), "invalid graph mode") {
		t.Errorf("err = %v", err)
	}
}
