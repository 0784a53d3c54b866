package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dojocrm/internal/adapters/discord"
	"dojocrm/internal/adapters/httpapi"
	"dojocrm/internal/application"
	"dojocrm/internal/clock"
	"dojocrm/internal/config"
	"dojocrm/internal/infrastructure/database"
	"dojocrm/internal/infrastructure/i18n"
	"dojocrm/internal/infrastructure/mongodb"
	"dojocrm/internal/ports/output"
	"dojocrm/pkg/tz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	var (
		eventRepo   output.EventRepository
		checkinRepo output.CheckinRepository
		studentRepo output.StudentRepository
		leadRepo    output.LeadRepository
		pingStorage func(ctx context.Context) error
	)

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatalf("migrations: %v", err)
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()

		eventRepo = database.NewEventRepository(pool)
		checkinRepo = database.NewCheckinRepository(pool)
		studentRepo = database.NewStudentRepository(pool)
		leadRepo = database.NewLeadRepository(pool)
		pingStorage = pool.Ping

	case config.DriverMongo:
		db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatalf("mongodb: %v", err)
		}
		defer func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				log.Printf("mongodb disconnect: %v", err)
			}
		}()
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Fatalf("mongodb indexes: %v", err)
		}

		eventRepo = mongodb.NewEventRepository(db)
		checkinRepo = mongodb.NewCheckinRepository(db)
		studentRepo = mongodb.NewStudentRepository(db)
		leadRepo = mongodb.NewLeadRepository(db)
		pingStorage = func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		}
	}

	announcer, err := discord.NewAnnouncer(cfg.DiscordToken, cfg.DiscordChannelID, tz.Load(cfg.Timezone))
	if err != nil {
		log.Fatalf("discord: %v", err)
	}

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Checkins:    application.NewCheckinService(checkinRepo, eventRepo, studentRepo, clock.NewSystem()),
		Events:      application.NewEventService(eventRepo, announcer),
		Students:    application.NewStudentService(studentRepo),
		Leads:       application.NewLeadService(leadRepo),
		Translator:  i18n.NewTranslator(cfg.DefaultLocale),
		CORSOrigins: cfg.CORSOrigins,
		PingStorage: pingStorage,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("listening on %s (storage=%s)", srv.Addr, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("bye")
}
