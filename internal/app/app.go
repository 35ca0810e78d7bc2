package app

import (
	"context"
	"net/http"
	"os"

	"gorm.io/gorm"

	"github.com/abeliasun/backoffice/internal/adapters/httpserver"
	"github.com/abeliasun/backoffice/internal/adapters/mailer"
	"github.com/abeliasun/backoffice/internal/adapters/repo/postgres"
	"github.com/abeliasun/backoffice/internal/domain"
	"github.com/abeliasun/backoffice/internal/usecase"
)

type App struct {
	DB        *gorm.DB
	Customers *usecase.CustomerUC
	Imports   *usecase.ImportUC
	Employees *usecase.EmployeeUC
	Services  *usecase.ServiceUC
	Invoices  *usecase.InvoiceUC
	Mailer    domain.ReportMailer
}

func NewApp(db *gorm.DB) (*App, error) {
	custRepo := postgres.NewCustomerRepo(db)
	empRepo := postgres.NewEmployeeRepo(db)
	svcRepo := postgres.NewServiceRepo(db)
	invRepo := postgres.NewInvoiceRepo(db)

	a := &App{DB: db}
	a.Customers = &usecase.CustomerUC{
		Customers:    custRepo,
		DeletePolicy: domain.ParseDeletePolicy(os.Getenv("CUSTOMER_DELETE_POLICY")),
	}
	a.Imports = &usecase.ImportUC{Customers: custRepo}
	a.Employees = &usecase.EmployeeUC{Employees: empRepo}
	a.Services = &usecase.ServiceUC{Services: svcRepo}
	a.Invoices = &usecase.InvoiceUC{
		Invoices:  invRepo,
		Customers: custRepo,
		Employees: empRepo,
		Services:  svcRepo,
	}
	a.Mailer = mailer.NewFromEnv()
	return a, nil
}

// MigrateAndSeed creates the schema and inserts the service catalogue on
// first run.
func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(
		&domain.Customer{},
		&domain.Employee{},
		&domain.Service{},
		&domain.SubService{},
		&domain.Invoice{},
		&domain.InvoiceEmployee{},
	); err != nil {
		return err
	}
	return a.Services.SeedCatalogue(context.Background())
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Customers, a.Imports, a.Employees, a.Services, a.Invoices, a.Mailer)
}
