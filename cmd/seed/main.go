// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"taller/internal/core/id"
	"taller/internal/infrastructure/storage/postgres"
	"taller/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedRolesAndPermissions(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed roles", "error", err)
	}

	if _, err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

// seedRolesAndPermissions creates the built-in roles and the permission
// matrix the API middleware checks against.
func seedRolesAndPermissions(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	roles := []struct {
		code        string
		name        string
		description string
	}{
		{"admin", "Administrador", "Acceso completo al sistema"},
		{"recepcion", "Recepción", "Atención de clientes, citas y cotizaciones"},
		{"mecanico", "Mecánico", "Tickets de trabajo e inventario"},
	}

	roleIDs := make(map[string]id.ID)
	for _, r := range roles {
		rid := id.New()
		tag, err := pool.Exec(ctx, `
			INSERT INTO roles (id, code, name, description, is_system, created_at, updated_at)
			VALUES ($1, $2, $3, $4, true, NOW(), NOW())
			ON CONFLICT (code) DO NOTHING
		`, rid, r.code, r.name, r.description)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", r.code, err)
		}
		if tag.RowsAffected() == 0 {
			if err := pool.QueryRow(ctx, `SELECT id FROM roles WHERE code = $1`, r.code).Scan(&rid); err != nil {
				return fmt.Errorf("fetch role %s: %w", r.code, err)
			}
		}
		roleIDs[r.code] = rid
	}

	resources := []string{
		"catalog:client", "catalog:vehicle", "catalog:service",
		"catalog:spare_part", "catalog:payment_method", "catalog:employee",
		"document:quotation", "document:invoice", "document:ticket",
		"document:appointment", "document:stock_movement",
		"report:workshop",
	}
	actions := []string{"read", "create", "update", "delete"}

	// Which resources each non-admin role may touch. Admin gets everything.
	roleResources := map[string][]string{
		"recepcion": {
			"catalog:client", "catalog:vehicle", "catalog:service",
			"catalog:payment_method", "document:quotation",
			"document:invoice", "document:appointment", "report:workshop",
		},
		"mecanico": {
			"catalog:service", "catalog:spare_part",
			"document:ticket", "document:stock_movement",
		},
	}

	for _, resource := range resources {
		for _, action := range actions {
			code := resource + ":" + action
			pid := id.New()
			tag, err := pool.Exec(ctx, `
				INSERT INTO permissions (id, code, name, description, resource, action, created_at)
				VALUES ($1, $2, $2, '', $3, $4, NOW())
				ON CONFLICT (code) DO NOTHING
			`, pid, code, resource, action)
			if err != nil {
				return fmt.Errorf("seed permission %s: %w", code, err)
			}
			if tag.RowsAffected() == 0 {
				if err := pool.QueryRow(ctx, `SELECT id FROM permissions WHERE code = $1`, code).Scan(&pid); err != nil {
					return fmt.Errorf("fetch permission %s: %w", code, err)
				}
			}

			grant := func(roleCode string) error {
				_, err := pool.Exec(ctx, `
					INSERT INTO role_permissions (role_id, permission_id, created_at)
					VALUES ($1, $2, NOW())
					ON CONFLICT DO NOTHING
				`, roleIDs[roleCode], pid)
				return err
			}

			if err := grant("admin"); err != nil {
				return fmt.Errorf("grant %s to admin: %w", code, err)
			}
			for roleCode, allowed := range roleResources {
				for _, res := range allowed {
					if res == resource {
						if err := grant(roleCode); err != nil {
							return fmt.Errorf("grant %s to %s: %w", code, roleCode, err)
						}
					}
				}
			}
		}
	}

	log.Infow("roles and permissions seeded", "roles", len(roles))
	return nil
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) (id.ID, error) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@taller.local"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	// Check if admin already exists
	var existingID id.ID
	err := pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1 AND deleted_at IS NULL`,
		adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "user_id", existingID)
		return existingID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return id.Nil(), fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return id.Nil(), fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	now := time.Now().UTC()

	_, err = pool.Exec(ctx, `
		INSERT INTO users (
			id, email, password_hash, first_name, last_name,
			is_active, is_admin, failed_login_attempts,
			created_at, updated_at, version
		)
		VALUES ($1, $2, $3, 'System', 'Admin', true, true, 0, $4, $4, 1)
	`, userID, adminEmail, string(passwordHash), now)
	if err != nil {
		return id.Nil(), fmt.Errorf("insert admin user: %w", err)
	}

	var adminRoleID id.ID
	err = pool.QueryRow(ctx, `SELECT id FROM roles WHERE code = 'admin'`).Scan(&adminRoleID)
	if err != nil {
		log.Warnw("admin role not found, skipping role assignment", "error", err)
	} else {
		_, err = pool.Exec(ctx, `
			INSERT INTO user_roles (user_id, role_id, granted_by)
			VALUES ($1, $2, NULL)
			ON CONFLICT (user_id, role_id) DO NOTHING
		`, userID, adminRoleID)
		if err != nil {
			log.Warnw("failed to assign admin role", "error", err)
		}
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", userID)
	return userID, nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	log.Info("seeding demo data...")

	// 1. Payment methods
	paymentMethods := []string{"Efectivo", "Tarjeta", "Transferencia", "Cheque"}
	for i, name := range paymentMethods {
		_, err := pool.Exec(ctx, `
			INSERT INTO cat_payment_methods (id, code, name, is_active, version, deletion_mark)
			VALUES ($1, $2, $3, true, 1, false)
			ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
		`, id.New(), fmt.Sprintf("FP-%03d", i+1), name)
		if err != nil {
			log.Warnw("failed to seed payment method", "name", name, "error", err)
		}
	}

	// 2. Workshop services
	services := []struct {
		name     string
		price    string
		minutes  int
		category string
	}{
		{"Cambio de aceite y filtro", "250.00", 45, "Mantenimiento"},
		{"Alineación y balanceo", "350.00", 60, "Suspensión"},
		{"Revisión de frenos", "150.00", 30, "Frenos"},
		{"Cambio de pastillas de freno", "400.00", 90, "Frenos"},
		{"Diagnóstico computarizado", "200.00", 40, "Diagnóstico"},
	}

	for i, s := range services {
		_, err := pool.Exec(ctx, `
			INSERT INTO cat_services (
				id, code, name, base_price, estimated_minutes,
				category, is_active, version, deletion_mark
			)
			VALUES ($1, $2, $3, $4, $5, $6, true, 1, false)
			ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
		`, id.New(), fmt.Sprintf("SRV-%03d", i+1), s.name, s.price, s.minutes, s.category)
		if err != nil {
			log.Warnw("failed to seed service", "name", s.name, "error", err)
		}
	}

	// 3. Spare parts
	parts := []struct {
		name     string
		price    string
		stock    string
		stockMin string
		category string
	}{
		{"Filtro de aceite universal", "45.00", "24", "5", "Filtros"},
		{"Aceite 10W-40 (litro)", "38.50", "60", "12", "Lubricantes"},
		{"Pastillas de freno delanteras", "180.00", "8", "4", "Frenos"},
		{"Bujía NGK estándar", "25.00", "40", "10", "Encendido"},
		{"Banda de distribución", "320.00", "3", "2", "Motor"},
	}

	for i, p := range parts {
		_, err := pool.Exec(ctx, `
			INSERT INTO cat_spare_parts (
				id, code, name, unit_price, stock, stock_min,
				category, is_active, version, deletion_mark
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, true, 1, false)
			ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
		`, id.New(), fmt.Sprintf("REP-%03d", i+1), p.name, p.price, p.stock, p.stockMin, p.category)
		if err != nil {
			log.Warnw("failed to seed spare part", "name", p.name, "error", err)
		}
	}

	// 4. A demo client with a vehicle
	clientID := id.New()
	tag, err := pool.Exec(ctx, `
		INSERT INTO cat_clients (id, code, name, nit, phone, email, version, deletion_mark)
		VALUES ($1, $2, $3, $4, $5, $6, 1, false)
		ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
	`, clientID, "CLI-001", "Juan Pérez", "1234567-8", "5555-1234", "juan.perez@example.com")
	if err != nil {
		log.Warnw("failed to seed demo client", "error", err)
		return nil
	}
	if tag.RowsAffected() == 0 {
		if err := pool.QueryRow(ctx, `
			SELECT id FROM cat_clients WHERE code = 'CLI-001' AND deletion_mark = FALSE
		`).Scan(&clientID); err != nil {
			log.Warnw("failed to fetch demo client", "error", err)
			return nil
		}
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO cat_vehicles (
			id, code, name, client_id, plate, brand, model, year, version, deletion_mark
		)
		VALUES ($1, 'VEH-001', 'Toyota Corolla P-123ABC', $2, 'P-123ABC', 'Toyota', 'Corolla', 2018, 1, false)
		ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
	`, id.New(), clientID)
	if err != nil {
		log.Warnw("failed to seed demo vehicle", "error", err)
	}

	log.Info("demo data seeded successfully")
	return nil
}
