// File: cmd/seed/main.go
//
// seed loads a demo tenant with clients, employees, catalog entries and a
// couple of orders. Employee schedules are planted in the legacy
// day-name-keyed form so the workinghours migration has real material to
// work on. The tool is idempotent; running it twice changes nothing.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"backmoney/config"
	"backmoney/database"
	"backmoney/database/repository"
	appointmentRepoPkg "backmoney/database/repository/appointment"
	employeeRepoPkg "backmoney/database/repository/employee"
	"backmoney/models"
	"backmoney/services/schedule"
	"backmoney/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoTenantID   = "demo-tenant-0001"
	demoTenantSlug = "barbearia-central"
	adminEmail     = "admin@barbearia-central.com.br"
	adminPassword  = "troque-esta-senha"
)

type seedEmployee struct {
	email        string
	name         string
	position     string
	availability []string
}

var seedEmployees = []seedEmployee{
	{
		email:    "carlos@barbearia-central.com.br",
		name:     "Carlos Mendes",
		position: "Barbeiro",
		availability: []string{
			"Segunda - 08:00, 09:00, 10:00 e 11:00",
			"Terca - 08:00, 09:00 e 14:00",
			"Quarta - 14:00, 15:00 e 16:00",
			"Sexta - 08:00 e 09:00",
		},
	},
	{
		email:    "ana@barbearia-central.com.br",
		name:     "Ana Paula Souza",
		position: "Cabeleireira",
		availability: []string{
			"segunda-feira - 13:00, 14:00 e 15:00",
			"quinta-feira - 09:00, 10:00 e 11:00",
			"Sabado - 08:30, 09:30 e 10:30",
		},
	},
	{
		email:    "roberto@barbearia-central.com.br",
		name:     "Roberto Lima",
		position: "Barbeiro",
		availability: []string{
			"Terca - 6h30 às 7h30",
			"Quarta - 18:00, 19:00",
			"Sexta - 18:00 e 19:00",
		},
	},
}

var seedClients = []models.Client{
	{Name: "Joao Pereira", Email: "joao.pereira@example.com", Phone: "+55 11 98888-0001"},
	{Name: "Maria Fernandes", Email: "maria.fernandes@example.com", Phone: "+55 11 98888-0002"},
	{Name: "Pedro Alves", Email: "pedro.alves@example.com", Phone: "+55 11 98888-0003"},
}

var seedServices = []models.ServiceOffering{
	{Name: "Corte masculino", DurationMin: 30, Price: 45},
	{Name: "Corte e barba", DurationMin: 60, Price: 80},
	{Name: "Coloracao", DurationMin: 90, Price: 150},
}

var seedProducts = []models.Product{
	{SKU: "POM-001", Name: "Pomada modeladora", Price: 35, Stock: 40, Category: "styling"},
	{SKU: "SHP-001", Name: "Shampoo anticaspa", Price: 28, Stock: 25, Category: "care"},
	{SKU: "OLE-001", Name: "Oleo para barba", Price: 42, Stock: 15, Category: "care"},
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		logger.Error("Seeding failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Seed complete for tenant", demoTenantSlug)
}

func run(ctx context.Context, logger *zap.Logger) error {
	now := time.Now().UTC()

	tenantRepo := repository.NewMongoTenantRepo()
	tenant := &models.Tenant{
		ID:        demoTenantID,
		Slug:      demoTenantSlug,
		Name:      "Barbearia Central",
		Segment:   "barbershop",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tenantRepo.Upsert(ctx, tenant); err != nil {
		return fmt.Errorf("failed to seed tenant: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	userRepo := repository.NewMongoUserRepo()
	admin := &models.User{
		ID:           uuid.New().String(),
		TenantID:     demoTenantID,
		Name:         "Administrador",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Upsert(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	clientRepo := repository.NewMongoClientRepo()
	for i := range seedClients {
		c := seedClients[i]
		c.ID = uuid.New().String()
		c.TenantID = demoTenantID
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := clientRepo.Upsert(ctx, &c); err != nil {
			return fmt.Errorf("failed to seed client %s: %w", c.Name, err)
		}
	}

	catalogRepo := repository.NewMongoCatalogRepo()
	for i := range seedServices {
		s := seedServices[i]
		s.ID = uuid.New().String()
		s.TenantID = demoTenantID
		s.IsActive = true
		s.CreatedAt = now
		s.UpdatedAt = now
		if err := catalogRepo.UpsertService(ctx, &s); err != nil {
			return fmt.Errorf("failed to seed service %s: %w", s.Name, err)
		}
	}
	for i := range seedProducts {
		p := seedProducts[i]
		p.ID = uuid.New().String()
		p.TenantID = demoTenantID
		p.IsActive = true
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := catalogRepo.UpsertProduct(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.SKU, err)
		}
	}

	employeeRepo := employeeRepoPkg.NewMongoEmployeeRepo()
	for _, se := range seedEmployees {
		if existing, _ := employeeRepo.GetByEmail(ctx, demoTenantID, se.email); existing != nil {
			logger.Info("Employee already seeded", zap.String("email", se.email))
			continue
		}

		emp := &models.Employee{
			ID:           uuid.New().String(),
			TenantID:     demoTenantID,
			Name:         se.name,
			Email:        se.email,
			Position:     se.position,
			WorkingHours: legacySchedule(se.availability, logger),
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := employeeRepo.Create(ctx, emp); err != nil {
			return fmt.Errorf("failed to seed employee %s: %w", se.name, err)
		}
		logger.Info("Seeded employee with legacy schedule",
			zap.String("name", se.name), zap.Int("days", len(se.availability)))
	}

	if err := seedOrder(ctx, clientRepo, catalogRepo); err != nil {
		return err
	}
	return seedAppointment(ctx, clientRepo, catalogRepo, employeeRepo)
}

// seedOrder plants one pending demo order unless the tenant already has
// orders, keeping repeat runs idempotent.
func seedOrder(ctx context.Context, clients repository.ClientRepository, catalog repository.CatalogRepository) error {
	orderRepo := repository.NewMongoOrderRepo()
	existing, err := orderRepo.ListByTenant(ctx, demoTenantID)
	if err != nil {
		return fmt.Errorf("failed to check existing orders: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	clientList, err := clients.ListByTenant(ctx, demoTenantID)
	if err != nil || len(clientList) == 0 {
		return fmt.Errorf("no clients available for demo order: %w", err)
	}
	products, err := catalog.ListProducts(ctx, demoTenantID)
	if err != nil || len(products) == 0 {
		return fmt.Errorf("no products available for demo order: %w", err)
	}

	p := products[0]
	order := &models.Order{
		TenantID: demoTenantID,
		ClientID: clientList[0].ID,
		Items: []models.OrderItem{
			{ProductID: p.ID, Name: p.Name, Quantity: 2, UnitPrice: p.Price},
		},
		Total:  2 * p.Price,
		Status: models.OrderPending,
	}
	if err := orderRepo.Create(ctx, order); err != nil {
		return fmt.Errorf("failed to seed demo order: %w", err)
	}
	return nil
}

// seedAppointment plants one scheduled demo appointment on a fixed future
// date unless that date already has one.
func seedAppointment(ctx context.Context, clients repository.ClientRepository, catalog repository.CatalogRepository, employees employeeRepoPkg.EmployeeRepository) error {
	const demoDate = "2026-09-07" // a Monday, inside every seeded schedule

	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	existing, err := apptRepo.ListByTenantAndDate(ctx, demoTenantID, demoDate)
	if err != nil {
		return fmt.Errorf("failed to check existing appointments: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	clientList, err := clients.ListByTenant(ctx, demoTenantID)
	if err != nil || len(clientList) == 0 {
		return fmt.Errorf("no clients available for demo appointment: %w", err)
	}
	services, err := catalog.ListServices(ctx, demoTenantID)
	if err != nil || len(services) == 0 {
		return fmt.Errorf("no services available for demo appointment: %w", err)
	}
	emp, err := employees.GetByEmail(ctx, demoTenantID, seedEmployees[0].email)
	if err != nil {
		return fmt.Errorf("demo employee missing: %w", err)
	}

	appt := &models.Appointment{
		TenantID:   demoTenantID,
		ClientID:   clientList[0].ID,
		EmployeeID: emp.ID,
		ServiceID:  services[0].ID,
		Date:       demoDate,
		StartTime:  "09:00",
		EndTime:    "09:30",
		Status:     models.AppointmentScheduled,
	}
	if err := apptRepo.Create(ctx, appt); err != nil {
		return fmt.Errorf("failed to seed demo appointment: %w", err)
	}
	return nil
}

// legacySchedule parses the free-text availability lines and emits the old
// day-name-keyed document form, keeping the line order.
func legacySchedule(lines []string, logger *zap.Logger) interface{} {
	var days []models.LegacyDay
	for _, line := range lines {
		day, times, ok := schedule.ParseAvailabilityLine(line)
		if !ok {
			logger.Warn("Skipping unparseable availability line", zap.String("line", line))
			continue
		}
		days = append(days, models.LegacyDay{Day: day, Times: times})
	}
	return schedule.LegacyDocument(days)
}
