package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"monthly-ledger/internal/chart"
	"monthly-ledger/internal/config"
	"monthly-ledger/internal/export"
	"monthly-ledger/internal/ledger"
	"monthly-ledger/internal/logging"
	"monthly-ledger/internal/money"
)

// Store is the session: the in-memory ledger plus what the UI and the
// commands need around it. Nothing is written to disk except exports.
type Store struct {
	ledger    *ledger.Ledger
	formatter money.Formatter
	mode      ledger.GraphMode
	exportDir string
	log       *log.Logger
}

func NewStore(cfg *config.Config, logger *log.Logger, opts ...ledger.Option) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{
		ledger:    ledger.New(opts...),
		formatter: money.NewFormatter(cfg.Locale),
		mode:      cfg.Mode(),
		exportDir: cfg.ExportDir,
		log:       logging.Component(logger, "store"),
	}
}

// Seed ---------------------------

type SeedRow struct {
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Value       yaml.Node `yaml:"value"`
}

// ErrAmbiguousSeedValue rejects quoted seed text such as "1.500" that reads
// as 1.5 in YAML but as 1500 in the table.
var ErrAmbiguousSeedValue = errors.New("ambiguous seed value: use a YAML number (1500.5) or pt-BR text with a comma (\"1.500,00\")")

// LoadSeed appends the rows of a YAML seed file and returns how many were
// added. Nothing is added when any row is invalid.
func (s *Store) LoadSeed(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading seed file: %w", err)
	}

	var rows []SeedRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return 0, fmt.Errorf("parsing seed file: %w", err)
	}

	type parsed struct {
		row   SeedRow
		value decimal.Decimal
	}
	valid := make([]parsed, 0, len(rows))
	for i, r := range rows {
		if _, err := ledger.ParseStoredDate(r.Date); err != nil {
			return 0, fmt.Errorf("seed row %d: %w", i+1, err)
		}
		v, err := parseSeedValue(r.Value)
		if err != nil {
			return 0, fmt.Errorf("seed row %d: %w", i+1, err)
		}
		valid = append(valid, parsed{row: r, value: v})
	}

	for _, p := range valid {
		date, _ := ledger.ParseStoredDate(p.row.Date)
		desc := strings.TrimSpace(p.row.Description)
		if desc == "" {
			desc = ledger.PlaceholderDescription
		}
		s.ledger.Insert(date, desc, p.value)
	}
	s.ledger.SortByDate()
	s.log.Info("seed loaded", "path", path, "rows", len(valid))
	return len(valid), nil
}

// parseSeedValue reads a plain YAML number (1500.5) or pt-BR text
// ("1.500,50"). Text with a dot and no comma is refused.
func parseSeedValue(n yaml.Node) (decimal.Decimal, error) {
	t := strings.TrimSpace(n.Value)
	if n.Kind == 0 || t == "" {
		return decimal.Zero, nil
	}
	switch n.ShortTag() {
	case "!!int", "!!float":
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%q: %w", t, money.ErrInvalidValue)
		}
		return d, nil
	}
	if strings.Contains(t, ".") && !strings.Contains(t, ",") {
		return decimal.Zero, fmt.Errorf("%q: %w", t, ErrAmbiguousSeedValue)
	}
	return money.Parse(t)
}

// Entries --------------------

func (s *Store) Entries() []ledger.Entry {
	return s.ledger.Visible()
}

func (s *Store) Summary() ledger.Summary {
	return s.ledger.Summary(s.mode)
}

func (s *Store) Month() ledger.Month {
	return s.ledger.Month()
}

func (s *Store) Months() []ledger.YearMonths {
	return s.ledger.Months()
}

func (s *Store) Mode() ledger.GraphMode {
	return s.mode
}

func (s *Store) Formatter() money.Formatter {
	return s.formatter
}

func (s *Store) AddEntry() ledger.Entry {
	e := s.ledger.Add()
	s.log.Debug("entry added", "id", e.ID, "date", ledger.FormatDate(e.Date))
	return e
}

// UpdateEntry writes text into one column of an entry. On a validation error
// the entry is left unchanged and the error carries the message to show.
func (s *Store) UpdateEntry(id string, col column, text string) (ledger.Entry, error) {
	var (
		e   ledger.Entry
		err error
	)
	switch col {
	case dateColumn:
		e, err = s.ledger.SetDate(id, text)
	case descriptionColumn:
		e, err = s.ledger.SetDescription(id, text)
	case valueColumn:
		e, err = s.ledger.SetValue(id, text)
	default:
		return s.ledger.Entry(id)
	}
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			s.log.Error("update failed", "id", id, "err", err)
		} else {
			s.log.Warn("rejected input", "id", id, "column", col.title(), "input", text, "err", err)
		}
		return e, err
	}
	s.log.Debug("entry updated", "id", id, "column", col.title())
	return e, nil
}

func (s *Store) DeleteEntry(id string) error {
	if err := s.ledger.Delete(id); err != nil {
		s.log.Error("delete failed", "id", id, "err", err)
		return err
	}
	s.log.Debug("entry deleted", "id", id)
	return nil
}

func (s *Store) Sort() {
	s.ledger.SortByDate()
	s.log.Debug("entries sorted")
}

func (s *Store) SelectMonth(m ledger.Month) {
	s.ledger.SelectMonth(m)
	s.log.Info("month selected", "month", m.String())
}

func (s *Store) ToggleMode() ledger.GraphMode {
	s.mode = s.mode.Toggle()
	s.log.Debug("graph mode", "mode", s.mode)
	return s.mode
}

// Export ---------------------

type ExportResult struct {
	XLSX string
	PNG  string
}

// Export writes the displayed month as a workbook and, when the month has
// entries, a chart image into the export directory.
func (s *Store) Export() (ExportResult, error) {
	return s.ExportJob()()
}

// ExportJob snapshots the displayed month and returns the function that
// writes it. The function touches no ledger state, so it can run off the UI
// loop.
func (s *Store) ExportJob() func() (ExportResult, error) {
	summary := s.Summary()
	entries := s.Entries()
	dir := s.exportDir
	formatter := s.formatter
	logger := s.log

	return func() (ExportResult, error) {
		var res ExportResult
		if err := os.MkdirAll(dir, 0755); err != nil {
			return res, fmt.Errorf("create export dir: %w", err)
		}

		base := "ledger-" + export.SheetName(summary.Month)

		res.XLSX = filepath.Join(dir, base+".xlsx")
		if err := export.WriteXLSX(res.XLSX, summary, entries, formatter); err != nil {
			logger.Error("xlsx export failed", "path", res.XLSX, "err", err)
			return ExportResult{}, err
		}

		png := filepath.Join(dir, base+".png")
		err := writePNG(png, summary, formatter)
		switch {
		case errors.Is(err, chart.ErrNoData):
			logger.Warn("chart skipped, month has no entries", "month", summary.Month.String())
		case err != nil:
			logger.Error("png export failed", "path", png, "err", err)
			return res, err
		default:
			res.PNG = png
		}

		logger.Info("exported", "xlsx", res.XLSX, "png", res.PNG)
		return res, nil
	}
}

// writePNG removes the file again when rendering or closing fails.
func writePNG(path string, summary ledger.Summary, formatter money.Formatter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := renderAndClose(f, summary, formatter); err != nil {
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// renderAndClose reports a failed Close, which is where buffered writes surface.
func renderAndClose(w io.WriteCloser, summary ledger.Summary, formatter money.Formatter) error {
	err := chart.WritePNG(w, summary, chart.PNGOptions{Width: 1024, Height: 512, Formatter: formatter})
	if cerr := w.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close: %w", cerr)
	}
	return err
}
