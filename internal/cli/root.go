package cli

import (
	"fmt"

	"github.com/martijn/userhub/internal/core/repository"
	"github.com/martijn/userhub/internal/core/service"
	"github.com/martijn/userhub/internal/infrastructure/sqlite"
	"github.com/martijn/userhub/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "userhub",
	Short: "UserHub - user management service",
	Long: `UserHub is a small user management service backed by SQLite.

It provides:
- A JSON API for user CRUD operations
- A server-rendered web UI with a paginated, searchable listing
- CLI commands for managing users directly`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/userhub/config.yml)")
}

// initServices initializes the database and services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	hasher := service.NewPasswordHasher()
	userService := service.NewUserService(userRepo, hasher)

	return &Services{
		DB:          db,
		UserRepo:    userRepo,
		Hasher:      hasher,
		UserService: userService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB          *sqlite.DB
	UserRepo    repository.UserRepository
	Hasher      *service.PasswordHasher
	UserService *service.UserService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
