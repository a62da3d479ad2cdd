package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/clubvine/clubvine-backend-go/internal/config"
	appHTTP "github.com/clubvine/clubvine-backend-go/internal/handler/http"
	"github.com/clubvine/clubvine-backend-go/internal/pkg/database"
	"github.com/clubvine/clubvine-backend-go/internal/pkg/email"
	"github.com/clubvine/clubvine-backend-go/internal/pkg/jwt"
	"github.com/clubvine/clubvine-backend-go/internal/repository/postgresql"
	inviteService "github.com/clubvine/clubvine-backend-go/internal/service/invite"
	onboardingService "github.com/clubvine/clubvine-backend-go/internal/service/onboarding"
	verificationService "github.com/clubvine/clubvine-backend-go/internal/service/verification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	accountRepo := postgresql.NewAccountRepository(db)
	clubRepo := postgresql.NewClubRepository(db)
	memberRepo := postgresql.NewMemberRepository(db)
	verificationRepo := postgresql.NewVerificationRepository(db)
	transactor := postgresql.NewTransactor(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	codeService := verificationService.NewVerificationService(verificationRepo, cfg.Invite.CodeTTL)
	inviteSvc := inviteService.NewInviteService(
		transactor,
		accountRepo,
		clubRepo,
		memberRepo,
		codeService,
		emailService,
		cfg.Invite.Concurrency,
		cfg.Invite.CodeTTL,
	)
	onboardingSvc := onboardingService.NewOnboardingService(clubRepo)

	inviteHandler := appHTTP.NewInviteHandler(inviteSvc)
	onboardingHandler := appHTTP.NewOnboardingHandler(onboardingSvc)

	router := appHTTP.NewRouter(
		JWTService,
		inviteHandler,
		onboardingHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
