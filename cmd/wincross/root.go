package wincross

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wincross/wincross/internal/version"
	"github.com/wincross/wincross/pkg/commands"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/logging"
	"github.com/wincross/wincross/pkg/settings"
	"github.com/wincross/wincross/pkg/style"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbosity     int
	root          string
	buildConfig   string
	legacyConfig  string
	projectConfig string
	runtime       string
	settingsFile  string

	// resolved is filled in by the root PersistentPreRunE
	resolved *settings.Settings
}

func (g *globalFlags) load() error {
	buildConfig := g.buildConfig
	if buildConfig == "" {
		buildConfig = g.legacyConfig
	}
	s, err := settings.Load(settings.Options{
		UserFile: g.settingsFile,
		Flags: map[string]string{
			settings.KeyRoot:          g.root,
			settings.KeyProjectConfig: g.projectConfig,
			settings.KeyBuildConfig:   buildConfig,
			settings.KeyRuntime:       g.runtime,
		},
	})
	if err != nil {
		return err
	}
	g.resolved = s
	return nil
}

func (g *globalFlags) locations() commands.Locations {
	return commands.Locations{
		Root:          g.resolved.Root,
		ProjectConfig: g.resolved.ProjectConfig,
		BuildConfig:   g.resolved.BuildConfig,
	}
}

func (g *globalFlags) invocation() commands.Invocation {
	return commands.Invocation{
		Locations: g.locations(),
		Runtime:   g.resolved.Runtime,
		UID:       os.Getuid(),
		GID:       os.Getgid(),
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "wincross",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(g.verbosity)
			style.Configure(os.Stdout)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return g.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&g.root, "root", "", MsgFlagRoot)
	pf.StringVar(&g.buildConfig, "build-config", "", MsgFlagBuildConfig)
	pf.StringVar(&g.legacyConfig, "config", "", MsgFlagBuildConfig)
	_ = pf.MarkHidden("config")
	pf.StringVar(&g.projectConfig, "project-config", "", MsgFlagProjectConfig)
	pf.StringVar(&g.runtime, "runtime", "", MsgFlagRuntime)
	pf.StringVar(&g.settingsFile, "settings", "", MsgFlagSettings)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "setup",
		Title: "SETUP:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "build",
		Title: "BUILD:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.AddCommand(newInitCmd(g))
	rootCmd.AddCommand(newDoctorCmd(g))
	rootCmd.AddCommand(newShowCmd(g))
	rootCmd.AddCommand(newConfigureCmd(g))
	rootCmd.AddCommand(newBuildCmd(g))
	rootCmd.AddCommand(newTestCmd(g))
	rootCmd.AddCommand(newShellCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
