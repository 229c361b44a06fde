// Package cli собирает команды клиента huddle.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	apiclient "github.com/avdeenkov/huddle/internal/client/api"
	"github.com/avdeenkov/huddle/internal/client/auth"
	"github.com/avdeenkov/huddle/internal/client/guard"
	"github.com/avdeenkov/huddle/internal/client/identity"
	"github.com/avdeenkov/huddle/internal/client/iocli"
	"github.com/avdeenkov/huddle/internal/client/session"
	"github.com/avdeenkov/huddle/internal/client/storage/boltdb"
	"github.com/avdeenkov/huddle/internal/client/token"
)

// Защищенные маршруты клиента. Login и register в списке отсутствуют:
// они достижимы всегда.
const (
	RouteFeed    = "/feed"
	RouteFriends = "/friends"
	RouteGroups  = "/groups"
	RouteEvents  = "/events"
	RouteProfile = "/profile"
)

// Options задает параметры запуска клиента
type Options struct {
	ServerURL string
	DBPath    string
	Version   string
	BuildDate string
	GitCommit string
}

// Cli держит зависимости команд
type Cli struct {
	io   iocli.IO
	opts Options

	store       *boltdb.Storage
	sessions    *session.Manager
	apiClient   *apiclient.Client
	authService *auth.Service
	resolver    *identity.Resolver
	guard       *guard.Guard
}

// New создает Cli. Зависимости собираются лениво в PersistentPreRunE,
// когда значения флагов уже известны.
func New(io iocli.IO, opts Options) *Cli {
	return &Cli{
		io:   io,
		opts: opts,
	}
}

// Command строит корневую команду со всеми подкомандами
func (c *Cli) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "huddle",
		Short:         "Huddle client for the event coordination service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initDeps(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.closeDeps()
		},
	}

	root.PersistentFlags().StringVar(&c.opts.ServerURL, "server", c.opts.ServerURL, "Server URL")
	root.PersistentFlags().StringVar(&c.opts.DBPath, "db", c.opts.DBPath, "Path to local database")

	root.AddCommand(
		c.registerCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.statusCommand(),
		c.whoamiCommand(),
		c.profileCommand(),
		c.usersCommand(),
		c.feedCommand(),
		c.friendsCommand(),
		c.groupsCommand(),
		c.eventsCommand(),
		c.versionCommand(),
	)

	return root
}

// initDeps собирает граф зависимостей. В тестах зависимости
// подставляются заранее, тогда сборка пропускается.
func (c *Cli) initDeps(ctx context.Context) error {
	if c.sessions != nil {
		return nil
	}

	store, err := boltdb.New(ctx, c.opts.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.store = store

	sessions, err := session.New(ctx, store)
	if err != nil {
		_ = store.Close()
		return err
	}
	c.sessions = sessions

	codec := token.New()
	c.apiClient = apiclient.NewClient(c.opts.ServerURL, sessions)
	c.resolver = identity.New(sessions, codec)
	c.guard = guard.New(sessions, RouteFeed, RouteFriends, RouteGroups, RouteEvents, RouteProfile)
	c.authService = auth.NewService(c.apiClient, sessions, c.resolver, codec)

	return nil
}

func (c *Cli) closeDeps() error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
		return err
	}
	c.store = nil
	return nil
}

// requireRoute проверяет маршрут через guard перед выполнением команды
func (c *Cli) requireRoute(route string) error {
	decision := c.guard.Check(route)
	if decision.Allowed {
		return nil
	}
	c.io.Printf("Redirecting to %s\n", decision.RedirectTo)
	return fmt.Errorf("not authenticated: please run 'huddle login' first")
}

// handleAPIError сбрасывает сессию, если сервер отверг токен.
// Остальные ошибки сессию не трогают и просто показываются пользователю.
func (c *Cli) handleAPIError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apiclient.ErrUnauthorized) {
		if clearErr := c.sessions.Clear(ctx); clearErr != nil {
			slog.Warn("failed to clear rejected session", "error", clearErr)
		}
		c.io.Println("Session rejected by server. Please run 'huddle login' again.")
	}
	return err
}

func (c *Cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// Версии не нужны ни база, ни сеть
		PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			c.io.Printf("Huddle Client\n")
			c.io.Printf("Version:    %s\n", c.opts.Version)
			c.io.Printf("Build Date: %s\n", c.opts.BuildDate)
			c.io.Printf("Git Commit: %s\n", c.opts.GitCommit)
		},
	}
}
