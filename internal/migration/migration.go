// Package migration holds the database schema.
package migration

// Create builds the tables used by the store. It is safe to run on an
// existing database.
const Create = `
CREATE TABLE IF NOT EXISTS KeyValue (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated DATETIME
);
`
