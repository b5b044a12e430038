// stickerclimb is a vertical platformer: climb four generated levels, beat the
// bear, collect stickers.
//
// Usage:
//
//	stickerclimb                 - Play a random run
//	stickerclimb --seed 1234     - Play a reproducible run
//	stickerclimb scores          - Show the best recorded runs
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/stickerclimb/assets"
	"github.com/milk9111/stickerclimb/common"
	"github.com/milk9111/stickerclimb/prefabs"
	"github.com/milk9111/stickerclimb/storage"
	"github.com/milk9111/stickerclimb/system"
)

var (
	flagSeed      int64
	flagLevel     int
	flagConfig    string
	flagAssets    string
	flagDBPath    string
	flagDebug     bool
	flagBaseMonit bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stickerclimb",
	Short: "Climb generated levels and beat the bear",
	Long: `Sticker Climb is a vertical platformer. Each run generates three
climbing levels and a boss arena from a single seed.

Controls:
  left / right    move
  space / up      jump (hold down to drop through a platform)
  A or J          attack
  P / escape      pause`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stickerclimb/runs.db", "Path to run history database")

	rootCmd.Flags().Int64Var(&flagSeed, "seed", -1, "Run seed (-1 = random per run)")
	rootCmd.Flags().IntVar(&flagLevel, "level", 1, fmt.Sprintf("Starting level (1-%d)", common.TotalLevels))
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a game.yaml override")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Load art from this directory instead of the embedded copy")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show debug overlay and hot-reload prefabs/")
	rootCmd.Flags().BoolVarP(&flagBaseMonit, "base-monitor", "m", false, "Use the first monitor instead of the primary one")

	rootCmd.AddCommand(scoresCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "stickerclimb",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	spec, err := prefabs.LoadGameSpec(flagConfig)
	if err != nil {
		return err
	}

	fsys := assets.Embedded()
	if flagAssets != "" {
		fsys = assets.Dir(flagAssets)
	}
	repo := assets.NewRepository(fsys, logger)

	cfg := system.Config{
		Seed:      flagSeed,
		FixedSeed: flagSeed >= 0,
		Level:     flagLevel,
		Spec:      spec,
		Art:       repo,
		Logger:    logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database, runs will not be saved", "error", err)
	} else {
		defer store.Close()
		cfg.Recorder = store
	}

	session, err := system.NewSession(cfg)
	if err != nil {
		return err
	}

	game := NewGame(session, repo, spec, logger, flagDebug)
	defer game.Close()

	if flagBaseMonit {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("Sticker Climb")
	ebiten.SetTPS(common.FPS)

	return ebiten.RunGame(game)
}
