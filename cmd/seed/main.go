package main

import (
	"context"
	"errors"
	"os"
	"time"

	"go-admin/internal/common/models"
	"go-admin/internal/config"
	"go-admin/internal/database"
	"go-admin/internal/features/backenduser"
	"go-admin/internal/features/role"
	"go-admin/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seed creates the Super Admin role and the initial admin account.
// Safe to run repeatedly: existing records are left as they are.
func Seed(
	lc fx.Lifecycle,
	roleRepo role.RoleRepository,
	userRepo backenduser.BackendUserRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				logger.Info("Starting database seeding")

				roleName := "Super Admin"
				var roleID primitive.ObjectID

				existingRole, err := roleRepo.FindByName(ctx, roleName)
				switch {
				case err == nil:
					logger.Info("Role exists, skipping", zap.String("role", roleName))
					roleID = existingRole.ID
				case errors.Is(err, mongo.ErrNoDocuments):
					superAdmin := &role.Role{
						ID:   primitive.NewObjectID(),
						Name: roleName,
						PermissionMap: models.PermissionMap{
							Dashboard:                   models.LevelAll,
							BookingManagement:           models.LevelAll,
							BlogManagement:              models.LevelAll,
							ContactUsManagement:         models.LevelAll,
							SuggestionsManagement:       models.LevelAll,
							BackendUserManagement:       models.LevelAll,
							RoleAndPermissionManagement: models.LevelAll,
						},
						CreatedAt: time.Now(),
						UpdatedAt: time.Now(),
					}
					if err := roleRepo.Create(ctx, superAdmin); err != nil {
						logger.Error("Failed to create role", zap.Error(err))
						return
					}
					logger.Info("Role created", zap.String("role", roleName))
					roleID = superAdmin.ID
				default:
					logger.Error("Failed to look up role", zap.Error(err))
					return
				}

				adminEmail := os.Getenv("ADMIN_EMAIL")
				adminPassword := os.Getenv("ADMIN_PASSWORD")
				if adminEmail == "" || adminPassword == "" {
					logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin user")
					return
				}
				adminName := os.Getenv("ADMIN_NAME")
				if adminName == "" {
					adminName = "Administrator"
				}

				if _, err := userRepo.FindByEmail(ctx, adminEmail); err == nil {
					logger.Info("Admin user exists, skipping", zap.String("email", adminEmail))
					return
				} else if !errors.Is(err, mongo.ErrNoDocuments) {
					logger.Error("Failed to look up admin user", zap.Error(err))
					return
				}

				hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
				if err != nil {
					logger.Error("Failed to hash password", zap.Error(err))
					return
				}

				admin := &backenduser.BackendUser{
					ID:        primitive.NewObjectID(),
					Name:      adminName,
					Email:     adminEmail,
					Password:  string(hash),
					RoleID:    &roleID,
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}
				if err := userRepo.Create(ctx, admin); err != nil {
					logger.Error("Failed to create admin user", zap.Error(err))
					return
				}
				logger.Info("Admin user created", zap.String("email", adminEmail))
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
			database.NewDatabase,
			role.NewRoleRepository,
			backenduser.NewBackendUserRepository,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
