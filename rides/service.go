package rides

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/rides/business/ride"
	"encore.app/rides/charging"
	"encore.app/rides/domain"
	"encore.app/rides/repository/riderecords"
	"encore.app/rides/workflow"
)

var ridesDB = sqldb.NewDatabase("rides", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

const taskQueue = "scooter-sessions"

var validate = validator.New()

var secrets struct {
	StripeAPIKey string
}

//encore:service
type Service struct {
	rides    ride.Business
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](ridesDB)

	rlog.Info("Initializing ride repository")
	repo := riderecords.New(pgxdb)
	stateMachine := domain.NewRideStateMachine(pgxdb, repo)
	rideBusiness := ride.NewRideBusiness(repo, stateMachine)

	c, err := client.Dial(client.Options{})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	workflow.SetActivityDependencies(charging.NewStripeClient(secrets.StripeAPIKey), rideBusiness)

	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.ScooterSession)
	w.RegisterActivity(workflow.ResolveCustomerActivity)
	w.RegisterActivity(workflow.PostChargeActivity)
	w.RegisterActivity(workflow.ActivateRideActivity)
	w.RegisterActivity(workflow.FinalizeRideActivity)

	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("Ride session worker running", "taskQueue", taskQueue)

	return &Service{
		rides:    rideBusiness,
		temporal: c,
		worker:   w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
