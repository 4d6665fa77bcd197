package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "rentease-backend/internal/adapter/http"
	"rentease-backend/internal/adapter/middleware"
	"rentease-backend/internal/adapter/repository/mysql"
	"rentease-backend/internal/config"
	"rentease-backend/internal/infrastructure/cache"
	"rentease-backend/internal/infrastructure/db"
	"rentease-backend/internal/infrastructure/gateway"
	"rentease-backend/internal/infrastructure/mail"
	bookingdomain "rentease-backend/internal/domain/booking"
	leasedomain "rentease-backend/internal/domain/lease"
	partydomain "rentease-backend/internal/domain/party"
	paymentdomain "rentease-backend/internal/domain/payment"
	propertydomain "rentease-backend/internal/domain/property"
	visitdomain "rentease-backend/internal/domain/visit"
	"rentease-backend/internal/notify"
	"rentease-backend/internal/scheduler"
	"rentease-backend/internal/usecase/booking"
	"rentease-backend/internal/usecase/lease"
	"rentease-backend/internal/usecase/leasedraft"
	"rentease-backend/internal/usecase/payment"
	"rentease-backend/internal/usecase/property"
	"rentease-backend/internal/usecase/visit"
	"rentease-backend/pkg/signature"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&partydomain.Tenant{},
		&partydomain.Landlord{},
		&propertydomain.Property{},
		&visitdomain.Visit{},
		&bookingdomain.Booking{},
		&leasedomain.Lease{},
		&paymentdomain.Payment{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	mailer := mail.NewSMTPMailer(cfg.SMTPAddr(), cfg.SMTPHost, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	dispatcher := notify.NewDispatcher(mailer, 256)

	// repositories
	props := mysql.NewPropertyRepository(gdb)
	parties := mysql.NewPartyRepository(gdb)
	visits := mysql.NewVisitRepository(gdb)
	bookings := mysql.NewBookingRepository(gdb)
	leases := mysql.NewLeaseRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	// collaborators
	verifier := signature.NewVerifier(cfg.GatewaySecret)
	gw := gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewayKeyID, cfg.GatewaySecret)
	drafts := leasedraft.NewEngine(props, parties)

	// usecases
	propertyUC := property.NewService(props)
	visitUC := visit.NewService(visits, props, parties, dispatcher)
	bookingUC := booking.NewService(uow, bookings, props, parties, drafts, verifier, dispatcher)
	paymentUC := payment.NewService(gw, payments, leases, props, parties, verifier, dispatcher)
	leaseUC := lease.NewService(uow, leases, parties, dispatcher)

	// background sweeps
	sched := scheduler.New(paymentUC, leaseUC, cfg.ReminderCron, cfg.LeaseReminderDays)
	if err := sched.Start(); err != nil {
		log.Fatalf("scheduler: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	httpadp.Register(e, httpadp.Handlers{
		Base:     httpadp.NewHandler(),
		Property: httpadp.NewPropertyHandler(propertyUC),
		Visit:    httpadp.NewVisitHandler(visitUC),
		Booking:  httpadp.NewBookingHandler(bookingUC, drafts),
		Payment:  httpadp.NewPaymentHandler(paymentUC),
		Lease:    httpadp.NewLeaseHandler(leaseUC),
	},
		middleware.Auth(cfg.JWTSecret),
		middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second),
	)

	go func() {
		addr := ":" + cfg.AppPort
		log.Printf("listening on %s", addr)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	// graceful shutdown: server first, then the sweeps, then the
	// notification queue so queued mails still go out.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	sched.Stop()
	dispatcher.Stop()
	_ = rdb.Close()
}
