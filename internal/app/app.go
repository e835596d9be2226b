// Package app wires configuration, the example catalog, navigation and the
// renderer together and runs the catalog until the user leaves it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/showcase/pkg/showcase"
	"github.com/BrandonKowalski/showcase/pkg/showcase/catalog"
	"github.com/BrandonKowalski/showcase/pkg/showcase/config"
	"github.com/BrandonKowalski/showcase/pkg/showcase/examples"
	"github.com/BrandonKowalski/showcase/pkg/showcase/i18n"
	"github.com/BrandonKowalski/showcase/pkg/showcase/linking"
	"github.com/BrandonKowalski/showcase/pkg/showcase/menu"
	"github.com/BrandonKowalski/showcase/pkg/showcase/platform"
	"github.com/BrandonKowalski/showcase/pkg/showcase/remote"
	"github.com/BrandonKowalski/showcase/pkg/showcase/router"
	"github.com/BrandonKowalski/showcase/pkg/showcase/routes"
	"github.com/BrandonKowalski/showcase/pkg/showcase/startup"
)

// Plan is everything derived before the window opens.
type Plan struct {
	Platform     platform.Info
	ReduceMotion bool
	Registry     *catalog.Registry
	Table        *routes.Table
	Resolver     *linking.Resolver
	Start        catalog.Name
	RemotePath   string
}

// Environment is what Prepare reads from the host.
type Environment struct {
	Getenv     func(string) string
	FindRemote func() (string, bool)
}

// HostEnvironment reads the process environment and scans input devices.
func HostEnvironment() Environment {
	return Environment{Getenv: os.Getenv, FindRemote: remote.Find}
}

// Prepare builds the routing table for reg and resolves link into the
// first screen. An empty link starts on Home.
func Prepare(cfg config.Config, reg *catalog.Registry, link string, env Environment) (*Plan, error) {
	remotePath := cfg.RemoteDevice
	if remotePath == "" && env.FindRemote != nil {
		remotePath, _ = env.FindRemote()
	}

	motion, err := platform.ResolveMotion(cfg.ReduceMotion, env.Getenv)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Platform:     platform.Detect(cfg.Platform, remotePath != ""),
		ReduceMotion: motion.ReduceMotion(),
		Registry:     reg,
		Start:        routes.Home,
		RemotePath:   remotePath,
	}

	plan.Table = routes.Build(reg, routes.Options{
		ReduceMotion: plan.ReduceMotion,
		Platform:     plan.Platform,
	})

	plan.Resolver, err = linking.New(plan.Table.Paths, cfg.LinkPrefixes...)
	if err != nil {
		return nil, err
	}

	if link != "" {
		plan.Start, err = plan.Resolver.Resolve(link)
		if err != nil {
			return nil, err
		}
	}

	return plan, nil
}

// StartInput is the input for the first screen.
func (p *Plan) StartInput() any {
	if p.Start == routes.Home {
		return routes.HomeInput{}
	}
	return nil
}

// HomeRows lists the examples in display order.
func HomeRows(table *routes.Table) []menu.Row {
	examples := table.Examples()
	rows := make([]menu.Row, len(examples))
	for i, e := range examples {
		rows[i] = menu.Row{Icon: e.Options.Icon, Title: e.Options.Title, Name: e.Name}
	}
	return rows
}

// Run opens the window and runs the catalog until the user exits, the
// window is closed or ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, link string) error {
	if cfg.LogPath != "" {
		showcase.SetLogPath(cfg.LogPath)
	}
	showcase.SetRawLogLevel(cfg.LogLevel)
	logger := showcase.GetLogger()

	plan, err := Prepare(cfg, examples.Registry(), link, HostEnvironment())
	if err != nil {
		return err
	}

	logger.Info("Starting",
		"platform", plan.Platform.String(),
		"reduce_motion", plan.ReduceMotion,
		"examples", plan.Registry.Len(),
		"start", plan.Start,
		"remote", plan.RemotePath)

	translator, err := i18n.New(cfg.Language)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	err = showcase.Init(showcase.Options{
		WindowTitle: cfg.WindowTitle,
		WindowOptions: showcase.WindowOptions{
			Borderless: cfg.Window.Borderless,
			Resizable:  cfg.Window.Resizable,
			Fullscreen: cfg.Window.Fullscreen,
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
		},
		Development:    cfg.Development,
		FontPath:       cfg.FontPath,
		BackgroundPath: cfg.BackgroundPath,
		Translator:     translator,
	})
	if err != nil {
		return err
	}
	defer showcase.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Screens block on the UI thread; a cancelled context closes the window.
	stop := context.AfterFunc(ctx, showcase.RequestQuit)
	defer stop()

	if plan.RemotePath != "" {
		attachRemote(ctx, plan.RemotePath, logger)
	}

	gate := startup.NewGate(cfg.Development)
	logger.Debug("Startup", "state", gate.State().String())

	err = showcase.LoadingScreen(gate, func() {
		if gate.Complete(nil) {
			logger.Debug("Startup", "state", gate.State().String())
		}
	})
	if err != nil {
		return quitIsNotAnError(err)
	}

	r := NewRouter(plan, translator, logger)

	err = r.Run(router.Route(plan.Start), plan.StartInput())
	logger.Info("Exiting", "error", err)
	return quitIsNotAnError(err)
}

// NewRouter registers Home and every example with the table's transition.
func NewRouter(plan *Plan, translator *i18n.Translator, logger *slog.Logger) *router.Router {
	r := router.New().WithLogger(logger)

	home, _ := plan.Table.Entry(routes.Home)
	rows := HomeRows(plan.Table)
	caps := plan.Platform.Capabilities()
	rowRenderer := showcase.NewRowRenderer(caps)
	title := home.Options.HeaderTitle
	if translator != nil {
		title = translator.T(i18n.HomeHeaderTitle)
	}

	entered := false
	r.Register(home.Route(), func(input any) (any, error) {
		in, _ := input.(routes.HomeInput)
		res, err := showcase.HomeScreen(showcase.HomeOptions{
			Title:       title,
			Rows:        rows,
			BackControl: home.Options.HeaderLeft,
			Animation:   homeAnimation(in, home),
			Animate:     entered,
			Renderer:    rowRenderer,
			Resume:      in.Resume,
		})
		entered = true
		if err != nil {
			return nil, err
		}
		return *res, nil
	})

	for _, entry := range plan.Table.Examples() {
		r.Register(entry.Route(), func(any) (any, error) {
			res, err := showcase.ExampleFrame(showcase.ExampleOptions{
				Entry:        entry,
				ReduceMotion: plan.ReduceMotion,
				ShowHints:    caps.FocusNavigation,
			})
			if err != nil {
				return nil, err
			}
			return *res, nil
		})
	}

	return r.OnTransition(plan.Table.Transition())
}

func attachRemote(ctx context.Context, path string, logger *slog.Logger) {
	reader, err := remote.Open(path, logger)
	if err != nil {
		logger.Warn("Remote unavailable", "path", path, "error", err)
		return
	}
	go reader.Run(ctx)
	showcase.AttachRemote(reader.Events())
}

func quitIsNotAnError(err error) error {
	if showcase.IsQuit(err) {
		return nil
	}
	return err
}

// homeAnimation picks the transition Home plays on entry. Going back replays
// the animation of the screen that was left.
func homeAnimation(in routes.HomeInput, home routes.ScreenEntry) routes.Animation {
	if in.Animation != "" {
		return in.Animation
	}
	return home.Options.Animation
}
