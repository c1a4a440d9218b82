package app

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Trivernis/uwucodec/pkg/codec"
	"github.com/Trivernis/uwucodec/pkg/config"
	"github.com/Trivernis/uwucodec/pkg/logging"
)

// App holds all shared mutable state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableOut io.Writer
	ColorOutput  bool

	// Config state
	Cfg             config.Config
	CurrentProfile  *config.Profile
	CfgFile         string
	ProfileOverride string

	// Stream flags, applied on top of the active profile
	ChunkSizeFlag int
	BoundaryFlag  codec.Boundary
	PolicyFlag    codec.Policy

	Verbose bool
	Logger  zerolog.Logger

	// Display
	NoHeaderFlag bool

	// Root command reference (for completion generation)
	Root *cobra.Command
}

// New creates an App with sane defaults.
func New() *App {
	return &App{
		OutWriter:    os.Stdout,
		ErrWriter:    os.Stderr,
		InReader:     os.Stdin,
		ColorableOut: colorable.NewColorableStdout(),
		ColorOutput:  isatty.IsTerminal(os.Stdout.Fd()),
		Logger:       zerolog.Nop(),
	}
}

// DefaultProfile is used when the config selects no profile.
func DefaultProfile() *config.Profile {
	return &config.Profile{
		ChunkSize: codec.DefaultChunkSize,
		Boundary:  codec.BoundaryNone,
		Policy:    codec.Lenient,
	}
}

// InitConfig reads the config file, resolves the active profile and
// sets up logging. Called by PersistentPreRunE on the root command.
func (a *App) InitConfig() error {
	a.Logger = logging.New(a.ErrWriter, a.Verbose)

	var err error
	a.Cfg, err = config.ReadConfig(a.CfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.Cfg.ProfileOverride = a.ProfileOverride

	profile := a.Cfg.ActiveProfile()
	if profile == nil {
		if a.ProfileOverride != "" {
			return fmt.Errorf("profile %q not found in %s", a.ProfileOverride, a.Cfg.Path())
		}
		profile = DefaultProfile()
	}

	defaults := DefaultProfile()
	if profile.ChunkSize == 0 {
		profile.ChunkSize = defaults.ChunkSize
	}
	if profile.Boundary == "" {
		profile.Boundary = defaults.Boundary
	}
	if profile.Policy == "" {
		profile.Policy = defaults.Policy
	}
	a.CurrentProfile = profile

	a.Logger.Debug().
		Str("config", a.Cfg.Path()).
		Str("profile", profile.Name).
		Int("chunk_size", profile.ChunkSize).
		Str("boundary", string(profile.Boundary)).
		Str("policy", string(profile.Policy)).
		Msg("resolved profile")
	return nil
}

// AddEncodeFlags installs the chunking flags on cmd.
func (a *App) AddEncodeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&a.ChunkSizeFlag, "chunk-size", 0, "Number of input bytes encoded per chunk (default from profile, 1024)")
	cmd.Flags().Var(&a.BoundaryFlag, "boundary", "What to write between chunks: none, space, newline (default from profile, none)")
	if err := cmd.RegisterFlagCompletionFunc("boundary", CompleteBoundary); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}
}

// AddDecodeFlags installs the decode policy flag on cmd.
func (a *App) AddDecodeFlags(cmd *cobra.Command) {
	cmd.Flags().Var(&a.PolicyFlag, "policy", "Handling of unknown words and odd word counts: lenient, strict (default from profile, lenient)")
	if err := cmd.RegisterFlagCompletionFunc("policy", CompletePolicy); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}
}

// EffectiveProfile returns the active profile with set flags applied.
func (a *App) EffectiveProfile(cmd *cobra.Command) config.Profile {
	p := *a.CurrentProfile
	flags := cmd.Flags()
	if flags.Changed("chunk-size") {
		p.ChunkSize = a.ChunkSizeFlag
	}
	if flags.Changed("boundary") {
		p.Boundary = a.BoundaryFlag
	}
	if flags.Changed("policy") {
		p.Policy = a.PolicyFlag
	}
	return p
}

// StreamOpts translates the effective profile into codec options.
func (a *App) StreamOpts(cmd *cobra.Command) ([]codec.StreamOpt, error) {
	p := a.EffectiveProfile(cmd)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []codec.StreamOpt{
		codec.WithChunkSize(p.ChunkSize),
		codec.WithBoundary(p.Boundary),
		codec.WithPolicy(p.Policy),
		codec.WithLogger(a.Logger),
	}, nil
}

// ValidProfileArgs provides shell completion for profile names. Completion
// runs without PersistentPreRunE, so the config is read here.
func (a *App) ValidProfileArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.ReadConfig(a.CfgFile)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	profileList := make([]string, 0, len(cfg.Profiles))
	for _, profile := range cfg.Profiles {
		profileList = append(profileList, profile.Name)
	}
	return profileList, cobra.ShellCompDirectiveNoFileComp
}

const (
	TabwriterMinWidth = 6
	TabwriterWidth    = 4
	TabwriterPadding  = 3
	TabwriterPadChar  = ' '
	TabwriterFlags    = 0
)

// NewTabWriter creates a standard tabwriter for CLI output.
func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, TabwriterMinWidth, TabwriterWidth, TabwriterPadding, TabwriterPadChar, TabwriterFlags)
}

// AddNoHeadersFlag installs --no-headers on cmd.
func (a *App) AddNoHeadersFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.NoHeaderFlag, "no-headers", false, "Hide table headers")
}
