package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "go-admin/internal/common/api"
	"go-admin/internal/config"
	"go-admin/internal/database"
	"go-admin/internal/features/auth"
	"go-admin/internal/features/backenduser"
	"go-admin/internal/features/blog"
	"go-admin/internal/features/booking"
	"go-admin/internal/features/childissue"
	"go-admin/internal/features/contact"
	"go-admin/internal/features/dashboard"
	"go-admin/internal/features/program"
	"go-admin/internal/features/role"
	"go-admin/internal/features/service"
	"go-admin/internal/features/suggestion"
	"go-admin/internal/logger"
	"go-admin/internal/middleware"
	"go-admin/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware(cfg))

	return app
}

// NewJWTManager builds the token manager from config.
func NewJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)
}

// AsRoute tags the constructor so Fx adds it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer starts Fiber in a goroutine and shuts it down on exit.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes creates the unique indexes backing the duplicate
// pre-checks.
func InitializeIndexes(
	lc fx.Lifecycle,
	logger *zap.Logger,
	roleRepo role.RoleRepository,
	userRepo backenduser.BackendUserRepository,
	programRepo program.ProgramRepository,
	serviceRepo service.ServiceRepository,
	bookingRepo booking.BookingRepository,
	childIssueRepo childissue.ChildIssueRepository,
	contactRepo contact.ContactRepository,
	suggestionRepo suggestion.SuggestionRepository,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				ensure := map[string]func(context.Context) error{
					"roles":        roleRepo.EnsureIndexes,
					"backendusers": userRepo.EnsureIndexes,
					"programs":     programRepo.EnsureIndexes,
					"services":     serviceRepo.EnsureIndexes,
					"bookings":     bookingRepo.EnsureIndexes,
					"childissues":  childIssueRepo.EnsureIndexes,
					"contacts":     contactRepo.EnsureIndexes,
					"suggestions":  suggestionRepo.EnsureIndexes,
				}
				for name, fn := range ensure {
					if err := fn(ctx); err != nil {
						logger.Warn("failed to ensure indexes",
							zap.String("collection", name),
							zap.Error(err))
					}
				}
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,
			NewJWTManager,
			middleware.NewAuthMiddleware,

			// Repositories
			role.NewRoleRepository,
			backenduser.NewBackendUserRepository,
			program.NewProgramRepository,
			service.NewServiceRepository,
			booking.NewBookingRepository,
			childissue.NewChildIssueRepository,
			contact.NewContactRepository,
			suggestion.NewSuggestionRepository,
			blog.NewBlogRepository,

			// Services
			role.NewRoleService,
			backenduser.NewBackendUserService,
			auth.NewAuthService,
			program.NewProgramService,
			service.NewServiceService,
			booking.NewBookingService,
			booking.NewBookingExporter,
			childissue.NewChildIssueService,
			contact.NewContactService,
			suggestion.NewSuggestionService,
			blog.NewBlogService,
			dashboard.NewDashboardService,

			// Interface adapters
			func(s backenduser.BackendUserService) middleware.UserResolver { return s },

			// Controllers
			auth.NewAuthController,
			role.NewRoleController,
			backenduser.NewBackendUserController,
			program.NewProgramController,
			service.NewServiceController,
			booking.NewBookingController,
			childissue.NewChildIssueController,
			contact.NewContactController,
			suggestion.NewSuggestionController,
			blog.NewBlogController,
			dashboard.NewDashboardController,

			// API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(role.NewRoleApi),
			AsRoute(backenduser.NewBackendUserApi),
			AsRoute(program.NewProgramApi),
			AsRoute(service.NewServiceApi),
			AsRoute(booking.NewBookingApi),
			AsRoute(childissue.NewChildIssueApi),
			AsRoute(contact.NewContactApi),
			AsRoute(suggestion.NewSuggestionApi),
			AsRoute(blog.NewBlogApi),
			AsRoute(dashboard.NewDashboardApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			InitializeIndexes,
		),
	)

	app.Run()
}
