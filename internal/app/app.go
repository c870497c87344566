package app

import (
	"context"
	"fmt"
	"log"

	"github.com/vitrine-lab/vitrineserv/config"
	"github.com/vitrine-lab/vitrineserv/internal/auth"
	"github.com/vitrine-lab/vitrineserv/internal/delivery/rest"
	"github.com/vitrine-lab/vitrineserv/internal/httpserver"
	"github.com/vitrine-lab/vitrineserv/internal/repository"
	"github.com/vitrine-lab/vitrineserv/internal/usecase"
	"github.com/vitrine-lab/vitrineserv/pkg/kafkaSender"
	"github.com/vitrine-lab/vitrineserv/pkg/lyfecycle"
	"github.com/vitrine-lab/vitrineserv/pkg/postgres"
	"github.com/vitrine-lab/vitrineserv/pkg/redis"
)

type App struct {
	cfg  config.Config
	cmps []cmp
}

type cmp struct {
	Service lyfecycle.Lyfecycle
	Name    string
}

func New(cfg config.Config) *App {
	return &App{cfg: cfg}
}

// checkoutNotifier adapts the Kafka sender to the usecase port.
type checkoutNotifier struct {
	sender *kafkaSender.Sender
}

func (n checkoutNotifier) Send(key, message string) error {
	return n.sender.Send(kafkaSender.Event{Key: key, Message: message})
}

func (app *App) Start(ctx context.Context) error {
	db, err := postgres.NewDB(app.cfg.Postgres)
	if err != nil {
		return err
	}
	cartDB := redis.NewRedisDB(app.cfg.Redis)

	app.cmps = append(
		app.cmps,
		cmp{db, "postgres"},
		cmp{cartDB, "redis"},
	)

	var sender usecase.EventSender
	if len(app.cfg.Kafka.Brokers) > 0 {
		kafka := kafkaSender.NewSender(app.cfg.Kafka)
		app.cmps = append(app.cmps, cmp{kafka, "kafka sender"})
		sender = checkoutNotifier{sender: kafka}
	}

	storeRepo := repository.NewStoreRepository(db.SQLXDB())
	storeUseCase := usecase.New(storeRepo, cartDB, sender)
	verifier := auth.NewVerifier(app.cfg.Auth)
	handler := rest.NewHandler(storeUseCase, verifier)
	httpServer := httpserver.NewServer(app.cfg.HTTP, handler.Router())

	app.cmps = append(app.cmps, cmp{httpServer, "http server"})

	okCh, errCh := make(chan struct{}), make(chan error)

	go func() {
		for _, c := range app.cmps {
			log.Printf("%v is starting", c.Name)

			if err := c.Service.Start(ctx); err != nil {
				err = fmt.Errorf("cannot start %s: %w", c.Name, err)

				log.Println(err)

				errCh <- err

				return
			}

			log.Printf("%v started", c.Name)
		}
		okCh <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("startup cancelled: %w", ctx.Err())
	case err := <-errCh:
		return err
	case <-okCh:
		log.Printf("Application started!")
		return nil
	}
}

func (app *App) Stop(ctx context.Context) error {
	log.Println("shutting down service...")
	okCh, errCh := make(chan struct{}), make(chan error)

	go func() {
		for i := len(app.cmps) - 1; i >= 0; i-- {
			c := app.cmps[i]
			log.Printf("stopping %q...", c.Name)

			if err := c.Service.Stop(ctx); err != nil {
				log.Println(err)
				errCh <- err

				return
			}
		}

		okCh <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown cancelled: %w", ctx.Err())
	case err := <-errCh:
		return err
	case <-okCh:
		log.Println("Application stopped!")
		return nil
	}
}
