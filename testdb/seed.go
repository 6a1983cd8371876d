package testdb

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lucasvillarinho/testmap/database"
	"github.com/lucasvillarinho/testmap/mapdata"
	"github.com/lucasvillarinho/testmap/wgs84"
)

// The example map schema. Line geometries are stored as WKT LINESTRINGs in
// the path column; start and end node always match the first and last point.
const schemaSQL = `
CREATE TABLE nodes (
    id  INTEGER PRIMARY KEY,
    lon REAL NOT NULL,
    lat REAL NOT NULL
);

CREATE TABLE lines (
    id        INTEGER PRIMARY KEY,
    startnode INTEGER NOT NULL REFERENCES nodes(id),
    endnode   INTEGER NOT NULL REFERENCES nodes(id),
    frc       INTEGER NOT NULL,
    fow       INTEGER NOT NULL,
    path      TEXT NOT NULL
);

CREATE INDEX idx_lines_startnode ON lines(startnode);
CREATE INDEX idx_lines_endnode ON lines(endnode);
`

// seed creates the schema and inserts the test network in one transaction.
func seed(ctx context.Context, db database.Database) error {
	network := mapdata.TestNetwork()

	return db.ExecWithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}

		if err := insertNodes(ctx, tx, network); err != nil {
			return err
		}

		return insertLines(ctx, tx, network)
	})
}

func insertNodes(ctx context.Context, tx *sql.Tx, network mapdata.Network) error {
	builder := sq.Insert("nodes").Columns("id", "lon", "lat")
	for _, node := range network.Nodes {
		builder = builder.Values(node.ID, node.Lon, node.Lat)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("building nodes insert: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting nodes: %w", err)
	}

	return nil
}

func insertLines(ctx context.Context, tx *sql.Tx, network mapdata.Network) error {
	builder := sq.Insert("lines").Columns("id", "startnode", "endnode", "frc", "fow", "path")
	for _, line := range network.Lines {
		path, ok := network.Geometry(line)
		if !ok {
			return fmt.Errorf("line %d references a missing node", line.ID)
		}

		wkt, err := wgs84.FormatLineString(path)
		if err != nil {
			return fmt.Errorf("encoding geometry of line %d: %w", line.ID, err)
		}

		builder = builder.Values(line.ID, line.StartNode, line.EndNode, line.FRC, line.FOW, wkt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("building lines insert: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting lines: %w", err)
	}

	return nil
}
