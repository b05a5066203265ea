package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS ledger_days (
    day        TEXT PRIMARY KEY,
    entries    TEXT NOT NULL,
    saved_at   TEXT NOT NULL
);
`
