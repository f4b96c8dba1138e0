package main

import (
	"fmt"
	"log"
	"strings"

	"feedesk/internal/config"
	"feedesk/internal/email/noop"
	"feedesk/internal/email/ses"
	"feedesk/internal/handler"
	"feedesk/internal/port"
	"feedesk/internal/repository/postgres"
	"feedesk/internal/router"
	"feedesk/internal/service"
	s3storage "feedesk/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	classRepo := postgres.NewClassRepo(db)
	studentRepo := postgres.NewStudentRepo(db)
	structureRepo := postgres.NewFeeStructureRepo(db)
	billRepo := postgres.NewFeeBillRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	userRepo := postgres.NewUserRepo(db)

	// Initialize email sender
	var emailSender port.EmailSender
	if strings.EqualFold(cfg.Email.Provider, "ses") {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.SchoolName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize object storage
	storageClient, err := s3storage.NewS3Client(&cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	classSvc := service.NewClassService(classRepo)
	studentSvc := service.NewStudentService(studentRepo, classRepo)
	structureSvc := service.NewStructureService(structureRepo, classRepo)
	billSvc := service.NewBillService(billRepo, paymentRepo, structureRepo, studentRepo, classRepo, emailSender, cfg.Billing.DefaultDueDays)
	reportSvc := service.NewReportService(billRepo, studentRepo, storageClient, emailSender, cfg.Storage)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	classH := handler.NewClassHandler(classSvc, studentSvc)
	studentH := handler.NewStudentHandler(studentSvc)
	structureH := handler.NewStructureHandler(structureSvc)
	billH := handler.NewBillHandler(billSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, classH, studentH, structureH, billH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
