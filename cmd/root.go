package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/saravenpi/sup/internal/config"
	"github.com/saravenpi/sup/internal/logging"
	"github.com/saravenpi/sup/internal/responder"
	"github.com/saravenpi/sup/internal/seed"
	"github.com/saravenpi/sup/internal/session"
	"github.com/saravenpi/sup/internal/ui"
)

var (
	configPath string
	debugMode  bool
	version    = "dev"
)

// SetVersion sets the version reported by --version and `sup version`.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "sup",
	Short: "Terminal chat mockup with simulated replies",
	Long: `Sup is a terminal chat mockup. Chats, messages and replies live in memory
and are gone when you quit.

Navigation:
  1-5               Chats, Status, Calls, Archived, Settings
  ↑/↓ or j/k        Navigate lists
  enter             Open chat / send message
  esc               Go back
  q                 Quit from the chat list
  ctrl+c            Force quit

Chats:
  /                 Search by name or phone
  tab               Cycle All / Unread / Groups
  n                 New chat
  p                 Contact info

Conversation:
  ctrl+p            Contact info
  ctrl+o            Archive, delete or request feedback
  ctrl+e            React to the last message

Contact info:
  e                 Edit name and about
  a                 Archive chat
  d                 Delete chat

Archived:
  u                 Unarchive chat
  d                 Delete chat

Configuration is read from ~/.sup/config.yml.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sup %s\n", version)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error encoding config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to ~/.sup/sup.log")
	rootCmd.AddCommand(versionCmd, configCmd)
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("sup {{.Version}}\n")
	return rootCmd.Execute()
}

func runTUI(cmd *cobra.Command, args []string) error {
	m, logger, err := setup(configPath, debugMode)
	if err != nil {
		return err
	}
	defer logger.Sync()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	logger.Info("session ended")
	return nil
}

// setup builds the root model from the config at path.
func setup(path string, debug bool) (ui.AppModel, *zap.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return ui.AppModel{}, nil, fmt.Errorf("error loading config: %w", err)
	}

	logger, err := logging.New(debug, cfg.LogPath())
	if err != nil {
		return ui.AppModel{}, nil, err
	}

	data, err := loadSeed(cfg.Seed.Path)
	if err != nil {
		return ui.AppModel{}, nil, err
	}

	r, err := responder.New(
		responder.WithReplies(cfg.Responder.Replies),
		responder.WithDelay(cfg.Responder.MinDelay, cfg.Responder.MaxDelay),
	)
	if err != nil {
		return ui.AppModel{}, nil, fmt.Errorf("error creating responder: %w", err)
	}

	state := session.New(data.Chats, data.Messages).WithBreakpoint(cfg.Layout.ProfileBreakpoint)
	store := session.NewStore(state, logger)
	logger.Info("session started",
		zap.String("session", store.ID()),
		zap.String("version", version),
		zap.Int("chats", len(data.Chats)))

	return ui.NewAppModel(store, r, logger), logger, nil
}

func loadSeed(path string) (seed.Data, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.LoadFile(path)
}
