package ui

import (
	"context"
	"duelchess/src"
	"duelchess/src/conf"
	"duelchess/src/logx"
	clic "duelchess/ui/cli"
	"duelchess/ui/gui"
	"duelchess/ui/lang"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// everything a front-end needs before it starts
type session struct {
	cfg    *conf.Config
	cat    *lang.Catalog
	logger *logx.Logx
	file   *os.File
}

func GetLogger(w io.Writer, c *cli.Command, cfg *conf.Config) *logx.Logx {
	level := cfg.Level
	if c.IsSet("level") {
		level = c.String("level")
	}
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(level),
		cfg.Debug || c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(w)
	return l
}

func openSession(c *cli.Command) (*session, error) {
	cfg, err := conf.NewConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("error read config: %w", err)
	}
	cat, err := lang.NewCatalog(lang.ParseLang(cfg.Lang))
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, cat: cat}
	var w io.Writer = os.Stdout
	if !c.Bool("console") {
		s.file, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("error open logfile: %w", err)
		}
		w = s.file
	}
	s.logger = GetLogger(w, c, cfg)
	return s, nil
}

func (s *session) Close() {
	_ = s.logger.Sync()
	if s.file != nil {
		s.file.Close()
	}
}

func RunCLI(c *cli.Command) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer s.Close()

	game := src.NewGame(s.logger)
	if fen := c.String("fen"); fen != "" {
		if err := game.LoadFEN(fen); err != nil {
			return err
		}
	}

	clic.EnableANSI()
	cl := clic.NewCLI(game, s.cat, clic.PrintBoard)
	if err := cl.Run(); err != nil {
		s.logger.Errorf("cli: %v", err)
		return fmt.Errorf("error duelchess: %w", err)
	}
	return nil
}

func RunGUI(c *cli.Command) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := gui.NewGUI(src.NewGame(s.logger), s.cfg, s.cat, s.logger)
	if err != nil {
		s.logger.Errorf("gui: %v", err)
		return fmt.Errorf("error GUI: %w", err)
	}
	if err := g.Run(); err != nil {
		s.logger.Errorf("gui: %v", err)
		return fmt.Errorf("error GUI: %w", err)
	}
	return nil
}

func NewCommand() *cli.Command {
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "start from a position in FEN format",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level (debug, info, warn, error)",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "log to stdout with console encoding",
	}
	conff := &cli.StringFlag{
		Name:  "config",
		Value: conf.DefaultFile,
		Usage: "path to JSON config",
	}

	return &cli.Command{
		Name:  "duelchess",
		Usage: "two-player chess",
		Flags: []cli.Flag{df, lf, cf, conff},
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "play in the terminal",
				Flags: []cli.Flag{ff},
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunCLI(c)
				},
			},
			{
				Name:  "gui",
				Usage: "play in a window",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunGUI(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return RunGUI(c)
		},
	}
}

func RunDuelChess() error {
	return NewCommand().Run(context.Background(), os.Args)
}
