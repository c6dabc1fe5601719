package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"monthly-ledger/internal/config"
	"monthly-ledger/internal/ledger"
	"monthly-ledger/internal/logging"
	"monthly-ledger/internal/report"
)

type options struct {
	configPath string
	seedPath   string
	month      string
}

// session is what every command starts from: validated config, a logger and
// a freshly seeded store.
type session struct {
	cfg    *config.Config
	log    *log.Logger
	store  *Store
	closer io.Closer
}

func openSession(opts *options) (*session, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.Open(logging.Config{Path: cfg.LogFile, Debug: cfg.Debug})
	if err != nil {
		return nil, err
	}

	store := NewStore(cfg, logger)
	if opts.seedPath != "" {
		if _, err := store.LoadSeed(opts.seedPath); err != nil {
			closer.Close()
			return nil, err
		}
	}
	if opts.month != "" {
		m, err := ledger.ParseMonth(opts.month)
		if err != nil {
			closer.Close()
			return nil, err
		}
		store.SelectMonth(m)
	}

	return &session{cfg: cfg, log: logger, store: store, closer: closer}, nil
}

func (s *session) Close() error {
	return s.closer.Close()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "monthly-ledger",
		Short:         "Controle mensal de receitas e despesas no terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			s.log.Info("starting", "month", s.store.Month().String(), "locale", s.cfg.Locale)
			p := tea.NewProgram(NewModel(s.store, s.cfg.Theme), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath(), "config file")
	root.PersistentFlags().StringVar(&opts.seedPath, "seed", "", "YAML file with rows to load at start")
	root.PersistentFlags().StringVar(&opts.month, "month", "", "month to show, MM/YYYY (default current month)")

	root.AddCommand(newSummaryCmd(opts), newExportCmd(opts))
	return root
}

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the month's entries and balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			report.PrintMonth(cmd.OutOrStdout(), s.store.Summary(), s.store.Entries(), s.store.Formatter())
			return nil
		},
	}
}

func newExportCmd(opts *options) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the month as XLSX and PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			if dir != "" {
				s.store.exportDir = dir
			}
			res, err := s.store.Export()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.XLSX)
			if res.PNG != "" {
				fmt.Fprintln(cmd.OutOrStdout(), res.PNG)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "o", "", "output directory (default from config)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
