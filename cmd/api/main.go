package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/workzen/workzen-backend-go/internal/config"
	appHTTP "github.com/workzen/workzen-backend-go/internal/handler/http"
	"github.com/workzen/workzen-backend-go/internal/pkg/database"
	"github.com/workzen/workzen-backend-go/internal/pkg/jwt"
	"github.com/workzen/workzen-backend-go/internal/pkg/storage"
	"github.com/workzen/workzen-backend-go/internal/repository/postgresql"
	achievementService "github.com/workzen/workzen-backend-go/internal/service/achievement"
	authService "github.com/workzen/workzen-backend-go/internal/service/auth"
	"github.com/workzen/workzen-backend-go/internal/service/file"
	leaveService "github.com/workzen/workzen-backend-go/internal/service/leave"
	userService "github.com/workzen/workzen-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	balanceRepo := postgresql.NewLeaveBalanceRepository(db)
	documentRepo := postgresql.NewLeaveDocumentRepository(db)
	achievementRepo := postgresql.NewAchievementRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileSvc := file.NewFileService(fileStorage)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, balanceRepo, documentRepo, userRepo, fileSvc, cfg.Leave.Policy)
	achievementSvc := achievementService.NewAchievementService(achievementRepo, fileSvc)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	userHandler := appHTTP.NewUserHandler(userSvc, authSvc)
	achievementHandler := appHTTP.NewAchievementHandler(achievementSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		leaveHandler,
		userHandler,
		achievementHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
