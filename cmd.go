package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/console"
	"github.com/lazharichir/blackjack/table"
	"github.com/spf13/cobra"
)

const banner = "Blackjack V1"

var version = "dev" // set by the linker

// newRootCmd creates the blackjack command reading input from in and
// writing the game to out.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "blackjack",
		Short:         "Play blackjack against the dealer in the terminal.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd, cfgFile)
			if err != nil {
				return err
			}
			return play(cfg, console.NewPrompter(in), console.NewView(out), out, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is blackjack.yaml in the user config dir or ./)")
	cmd.Flags().Int("decks", 0, "number of decks in the shoe, 1-4 (0 asks at startup)")
	cmd.Flags().Int64("seed", 0, "shuffle seed (0 seeds from the clock)")
	cmd.Flags().String("log-level", "warn", "log level: debug, info, warn or error")
	cmd.Flags().Bool("debug-events", false, "dump the session's events when it ends")

	return cmd
}

// play runs one session. A bad deck count is reported before any game
// state exists.
func play(cfg config.Config, prompter *console.Prompter, view *console.View, out, logOut io.Writer) error {
	logger := console.NewLogger(logOut, cfg.LogLevel)
	view.Header(banner)

	decks := cfg.Decks
	if decks == 0 {
		view.Prompt("How many decks would you like to play with?: ")
		n, err := prompter.NextInt()
		if err != nil && !errors.Is(err, table.ErrInvalidInput) && !errors.Is(err, io.EOF) {
			return err
		}
		decks = n
	}
	if err := config.ValidateDecks(decks); err != nil {
		view.Error("Invalid deck count!")
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("building shoe", "decks", decks, "seed", seed)

	shoe, err := cards.NewShoe(decks, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	shoe.Shuffle()

	session := table.NewSession(shoe, prompter, view, nil, logger)
	if err := session.Run(); err != nil {
		return fmt.Errorf("session %s: %w", session.ID, err)
	}

	if cfg.DebugEvents {
		return session.DumpEvents(out)
	}
	return nil
}
