package db

// SchemaSQL is the complete schema of the in-memory fleet registry.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests open their
// databases through OpenMemory so repository code that references a missing
// column fails immediately with "no such column".
//
// The database only lives for one session, so there are no migrations.
const SchemaSQL = `
-- Ships (fleet registry, insertion order = seq)
CREATE TABLE IF NOT EXISTS ships (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	ship_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	daily_rate REAL NOT NULL DEFAULT 0,
	fuel_capacity REAL NOT NULL DEFAULT 0
);

-- ship_id is not UNIQUE; lookups take the lowest seq
CREATE INDEX IF NOT EXISTS idx_ships_ship_id ON ships(ship_id, seq);

-- Missions (append-only log per ship)
CREATE TABLE IF NOT EXISTS missions (
	ship_seq INTEGER NOT NULL,
	position INTEGER NOT NULL,
	hours_spent REAL NOT NULL DEFAULT 0,
	refuelings INTEGER NOT NULL DEFAULT 0 CHECK(refuelings >= 0),
	start_stardate INTEGER NOT NULL,
	end_stardate INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (ship_seq, position),
	FOREIGN KEY (ship_seq) REFERENCES ships(seq)
);
`
