package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/google/uuid"
)

type seedUser struct {
	name  string
	email string
	role  string
}

type seedSupplier struct {
	name    string
	contact string
	phone   string
	email   string
	address string
}

type seedSupply struct {
	name         string
	description  string
	unit         string
	minimumStock float64
	currentStock float64
	unitCost     float64
}

var masterUsers = []seedUser{
	{name: "Administrador", email: "admin@panela.com", role: "ADMIN"},
	{name: "Operario", email: "operario@panela.com", role: "OPERATOR"},
}

var masterSuppliers = []seedSupplier{
	{
		name:    "Finca La Esperanza",
		contact: "Carlos Rodríguez",
		phone:   "+57 300 123 4567",
		email:   "carlos@fincaesperanza.com",
		address: "Vereda El Trapiche, Santander",
	},
	{
		name:    "Cooperativa Panelera",
		contact: "María González",
		phone:   "+57 301 987 6543",
		email:   "maria@cooppanelera.com",
		address: "Centro, Barbosa, Santander",
	},
}

var masterSupplies = []seedSupply{
	{
		name:         "Bolsas de 500g",
		description:  "Bolsas plásticas para empaque de panela",
		unit:         "unidades",
		minimumStock: 100,
		currentStock: 500,
		unitCost:     50,
	},
	{
		name:         "Etiquetas adhesivas",
		description:  "Etiquetas con información del producto",
		unit:         "unidades",
		minimumStock: 50,
		currentStock: 200,
		unitCost:     25,
	},
	{
		name:         "Cajas de cartón",
		description:  "Cajas para transporte de panela",
		unit:         "unidades",
		minimumStock: 20,
		currentStock: 100,
		unitCost:     1500,
	},
}

func seedMasterData(ctx context.Context, tx *sql.Tx) error {
	for _, u := range masterUsers {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO users (id, name, email, role)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role`,
			uuid.NewString(), u.name, u.email, u.role)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.email, err)
		}
	}
	log.Printf("Seeded %d users", len(masterUsers))

	supplierIDs := make([]string, 0, len(masterSuppliers))
	for _, s := range masterSuppliers {
		id := uuid.NewString()
		_, err := tx.ExecContext(ctx, `
            INSERT INTO suppliers (id, name, contact, phone, email, address)
            VALUES ($1, $2, $3, $4, $5, $6)`,
			id, s.name, s.contact, s.phone, s.email, s.address)
		if err != nil {
			return fmt.Errorf("failed to seed supplier %s: %w", s.name, err)
		}
		supplierIDs = append(supplierIDs, id)
	}
	log.Printf("Seeded %d suppliers", len(masterSuppliers))

	for _, item := range masterSupplies {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO supply_items (id, name, description, unit, minimum_stock, current_stock, unit_cost)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.NewString(), item.name, item.description, item.unit,
			item.minimumStock, item.currentStock, item.unitCost)
		if err != nil {
			return fmt.Errorf("failed to seed supply %s: %w", item.name, err)
		}
	}
	log.Printf("Seeded %d supply items", len(masterSupplies))

	purchases := []struct {
		supplierID string
		quantity   float64
		unitPrice  float64
		notes      string
	}{
		{supplierIDs[0], 100, 3500, "Panela de alta calidad"},
		{supplierIDs[1], 150, 3200, "Entrega puntual"},
	}
	for _, p := range purchases {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO purchases (id, supplier_id, quantity, unit_price, total, notes)
            VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.NewString(), p.supplierID, p.quantity, p.unitPrice, p.quantity*p.unitPrice, p.notes)
		if err != nil {
			return fmt.Errorf("failed to seed purchase: %w", err)
		}
	}
	log.Printf("Seeded %d purchases", len(purchases))

	return nil
}

var demoStatuses = []string{"AVAILABLE", "AVAILABLE", "SOLD", "IN_PRODUCTION"}

// seedDemoData creates a few lots per month over the requested window, with
// a sale against most of them, so the analytics report has series to show.
func seedDemoData(ctx context.Context, tx *sql.Tx, months int) error {
	if months < 1 {
		months = 6
	}

	var operatorID string
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM users WHERE role = 'OPERATOR' LIMIT 1`).Scan(&operatorID)
	if err != nil {
		return fmt.Errorf("no operator user found, run the master seed first: %w", err)
	}

	var supplyItemID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM supply_items ORDER BY name LIMIT 1`).Scan(&supplyItemID)
	if err != nil {
		return fmt.Errorf("no supply items found, run the master seed first: %w", err)
	}

	rng := rand.New(rand.NewSource(42))
	now := time.Now()
	lotSeq := 0

	for back := months - 1; back >= 0; back-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -back, 0)

		lotsThisMonth := 2 + rng.Intn(3)
		for i := 0; i < lotsThisMonth; i++ {
			lotSeq++
			lotID := uuid.NewString()
			producedAt := monthStart.AddDate(0, 0, rng.Intn(25))
			quantity := 200 + rng.Float64()*300

			cane := quantity * (2800 + rng.Float64()*600)
			labor := quantity * (400 + rng.Float64()*150)
			energy := quantity * (120 + rng.Float64()*60)
			packaging := quantity * (90 + rng.Float64()*40)
			transport := quantity * (60 + rng.Float64()*50)
			totalCost := cane + labor + energy + packaging + transport
			margin := 20.0
			suggested := domain.SuggestedPrice(domain.UnitCost(totalCost, quantity), margin)

			status := demoStatuses[rng.Intn(len(demoStatuses))]

			_, err := tx.ExecContext(ctx, `
                INSERT INTO lots (id, code, quantity, produced_at,
                    cane_cost, labor_cost, energy_cost, packaging_cost, transport_cost,
                    total_cost, profit_margin, suggested_price, status, operator_id)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
				lotID, fmt.Sprintf("LOTE-%s-%03d", producedAt.Format("200601"), lotSeq),
				quantity, producedAt,
				cane, labor, energy, packaging, transport,
				totalCost, margin, suggested, status, operatorID)
			if err != nil {
				return fmt.Errorf("failed to seed lot: %w", err)
			}

			if status == "SOLD" || (status == "AVAILABLE" && rng.Float64() < 0.6) {
				soldQty := quantity
				if status == "AVAILABLE" {
					soldQty = quantity * (0.3 + rng.Float64()*0.5)
				}
				soldAt := producedAt.AddDate(0, 0, 2+rng.Intn(5))
				_, err := tx.ExecContext(ctx, `
                    INSERT INTO sales (id, lot_id, quantity, unit_price, total, customer, sold_at)
                    VALUES ($1, $2, $3, $4, $5, $6, $7)`,
					uuid.NewString(), lotID, soldQty, suggested, soldQty*suggested,
					"Distribuidora El Trapiche", soldAt)
				if err != nil {
					return fmt.Errorf("failed to seed sale: %w", err)
				}
			}
		}
	}

	for back := months - 1; back >= 0; back-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -back, 0)

		movements := []struct {
			direction string
			quantity  float64
			reason    string
		}{
			{"IN", 100 + rng.Float64()*100, "Compra de insumos"},
			{"OUT", 30 + rng.Float64()*40, "Empaque de lotes"},
		}
		for _, m := range movements {
			_, err := tx.ExecContext(ctx, `
                INSERT INTO supply_movements (id, supply_item_id, direction, quantity, reason, moved_at, user_id)
                VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				uuid.NewString(), supplyItemID, m.direction, m.quantity, m.reason,
				monthStart.AddDate(0, 0, rng.Intn(25)), operatorID)
			if err != nil {
				return fmt.Errorf("failed to seed supply movement: %w", err)
			}
		}
	}

	log.Printf("Seeded %d demo lots over %d months", lotSeq, months)
	return nil
}
