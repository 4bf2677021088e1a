package main

// schemaDDL creates the operational tables the analytics reads aggregate
// over. IDs are uuid strings generated by the application.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL UNIQUE,
    role       TEXT NOT NULL DEFAULT 'OPERATOR',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS suppliers (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    contact    TEXT,
    phone      TEXT,
    email      TEXT,
    address    TEXT,
    active     BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS purchases (
    id           TEXT PRIMARY KEY,
    supplier_id  TEXT NOT NULL REFERENCES suppliers(id),
    quantity     DOUBLE PRECISION NOT NULL,
    unit_price   DOUBLE PRECISION NOT NULL,
    total        DOUBLE PRECISION NOT NULL,
    purchased_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    notes        TEXT
);

CREATE TABLE IF NOT EXISTS lots (
    id              TEXT PRIMARY KEY,
    code            TEXT NOT NULL UNIQUE,
    quantity        DOUBLE PRECISION NOT NULL,
    produced_at     TIMESTAMPTZ NOT NULL,
    cane_cost       DOUBLE PRECISION NOT NULL DEFAULT 0,
    labor_cost      DOUBLE PRECISION NOT NULL DEFAULT 0,
    energy_cost     DOUBLE PRECISION NOT NULL DEFAULT 0,
    packaging_cost  DOUBLE PRECISION NOT NULL DEFAULT 0,
    transport_cost  DOUBLE PRECISION NOT NULL DEFAULT 0,
    total_cost      DOUBLE PRECISION NOT NULL DEFAULT 0,
    profit_margin   DOUBLE PRECISION NOT NULL DEFAULT 20,
    suggested_price DOUBLE PRECISION NOT NULL DEFAULT 0,
    status          TEXT NOT NULL DEFAULT 'IN_PRODUCTION',
    operator_id     TEXT NOT NULL REFERENCES users(id),
    description     TEXT,
    notes           TEXT,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sales (
    id         TEXT PRIMARY KEY,
    lot_id     TEXT NOT NULL REFERENCES lots(id),
    quantity   DOUBLE PRECISION NOT NULL,
    unit_price DOUBLE PRECISION NOT NULL,
    total      DOUBLE PRECISION NOT NULL,
    customer   TEXT NOT NULL,
    sold_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS supply_items (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    description   TEXT,
    unit          TEXT NOT NULL,
    minimum_stock DOUBLE PRECISION NOT NULL DEFAULT 0,
    current_stock DOUBLE PRECISION NOT NULL DEFAULT 0,
    unit_cost     DOUBLE PRECISION NOT NULL DEFAULT 0,
    active        BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS supply_movements (
    id             TEXT PRIMARY KEY,
    supply_item_id TEXT NOT NULL REFERENCES supply_items(id),
    direction      TEXT NOT NULL,
    quantity       DOUBLE PRECISION NOT NULL,
    reason         TEXT,
    moved_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    user_id        TEXT NOT NULL REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_lots_produced_at  ON lots (produced_at);
CREATE INDEX IF NOT EXISTS idx_lots_status       ON lots (status);
CREATE INDEX IF NOT EXISTS idx_sales_sold_at     ON sales (sold_at);
CREATE INDEX IF NOT EXISTS idx_purchases_bought  ON purchases (purchased_at);
`
