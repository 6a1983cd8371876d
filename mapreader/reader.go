// Package mapreader reads the example map database back: nodes, lines, and
// proximity queries against the network created by the testdb package.
package mapreader

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	sq "github.com/Masterminds/squirrel"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lucasvillarinho/testmap/database"
	"github.com/lucasvillarinho/testmap/database/drivers"
	"github.com/lucasvillarinho/testmap/mapdata"
	"github.com/lucasvillarinho/testmap/wgs84"
)

// ErrNotFound is returned when a node or line id is not in the map.
var ErrNotFound = errors.New("not found")

// lookupCacheSize bounds the per-reader node and line caches. The test
// network is small, repeated lookups during traversal dominate.
const lookupCacheSize = 512

// metersPerDegreeLat is the distance spanned by one degree of latitude.
const metersPerDegreeLat = 111320.0

// Reader reads map objects from an example map database.
type Reader struct {
	engine drivers.Driver
	db     database.Database

	nodeCache *lru.Cache[int64, *Node]
	lineCache *lru.Cache[int64, *Line]
}

// Open opens the example map database at the given path for reading.
//
// Parameters:
//   - ctx: the context
//   - path: the path of the database file
//   - opts: database options, e.g. database.WithDriver
//
// Returns:
//   - *Reader: the reader instance
//   - error: an error if the operation failed
func Open(ctx context.Context, path string, opts ...database.Option) (*Reader, error) {
	db, err := database.NewDatabase(ctx, path, opts...)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	reader, err := New(db.GetEngine(ctx))
	if err != nil {
		_ = db.Close(ctx)
		return nil, err
	}
	reader.db = db

	return reader, nil
}

// New creates a reader over an already open connection, e.g. one returned
// by testdb.SetupInMemory.
func New(engine drivers.Driver) (*Reader, error) {
	nodeCache, err := lru.New[int64, *Node](lookupCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating node cache: %w", err)
	}

	lineCache, err := lru.New[int64, *Line](lookupCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating line cache: %w", err)
	}

	return &Reader{
		engine:    engine,
		nodeCache: nodeCache,
		lineCache: lineCache,
	}, nil
}

// NewFromDB creates a reader over an open *sql.DB.
func NewFromDB(conn *sql.DB) (*Reader, error) {
	return New(drivers.FromDB(conn))
}

// Close closes the underlying database when the reader owns it.
func (r *Reader) Close(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.Close(ctx)
}

// GetNode returns a node by its id.
func (r *Reader) GetNode(ctx context.Context, id int64) (*Node, error) {
	if node, ok := r.nodeCache.Get(id); ok {
		return node, nil
	}

	query, args, err := sq.Select("id", "lon", "lat").
		From("nodes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building node query: %w", err)
	}

	node, err := scanNode(r.engine.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("node %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("reading node %d: %w", id, err)
	}

	r.nodeCache.Add(id, node)
	return node, nil
}

// GetLine returns a line by its id.
func (r *Reader) GetLine(ctx context.Context, id int64) (*Line, error) {
	if line, ok := r.lineCache.Get(id); ok {
		return line, nil
	}

	query, args, err := lineSelect().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building line query: %w", err)
	}

	rows, err := r.engine.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reading line %d: %w", id, err)
	}

	lines, err := collectLines(rows)
	if err != nil {
		return nil, fmt.Errorf("reading line %d: %w", id, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("line %d: %w", id, ErrNotFound)
	}

	r.lineCache.Add(id, lines[0])
	return lines[0], nil
}

// Nodes returns all nodes in the map.
func (r *Reader) Nodes(ctx context.Context) ([]*Node, error) {
	query, _, err := sq.Select("id", "lon", "lat").From("nodes").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building nodes query: %w", err)
	}

	rows, err := r.engine.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading nodes: %w", err)
	}
	defer rows.Close()

	var nodes []*Node
	for rows.Next() {
		var node Node
		if err := rows.Scan(&node.ID, &node.Position.Lon, &node.Position.Lat); err != nil {
			return nil, fmt.Errorf("scanning node: %w", err)
		}
		nodes = append(nodes, &node)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading nodes: %w", err)
	}

	return nodes, nil
}

// Lines returns all lines in the map.
func (r *Reader) Lines(ctx context.Context) ([]*Line, error) {
	query, _, err := lineSelect().OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building lines query: %w", err)
	}

	rows, err := r.engine.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}

	lines, err := collectLines(rows)
	if err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}

	return lines, nil
}

// NodeCount returns the number of nodes in the map.
func (r *Reader) NodeCount(ctx context.Context) (int64, error) {
	return r.count(ctx, "nodes")
}

// LineCount returns the number of lines in the map.
func (r *Reader) LineCount(ctx context.Context) (int64, error) {
	return r.count(ctx, "lines")
}

// OutgoingLines returns the lines starting at the given node.
func (r *Reader) OutgoingLines(ctx context.Context, nodeID int64) ([]*Line, error) {
	return r.linesWhere(ctx, sq.Eq{"startnode": nodeID})
}

// IncomingLines returns the lines ending at the given node.
func (r *Reader) IncomingLines(ctx context.Context, nodeID int64) ([]*Line, error) {
	return r.linesWhere(ctx, sq.Eq{"endnode": nodeID})
}

// ConnectedLines returns the lines touching the given node, in either
// direction.
func (r *Reader) ConnectedLines(ctx context.Context, nodeID int64) ([]*Line, error) {
	return r.linesWhere(ctx, sq.Or{sq.Eq{"startnode": nodeID}, sq.Eq{"endnode": nodeID}})
}

// FindNodesCloseTo returns all nodes within dist meters around the given
// point, in no particular order.
func (r *Reader) FindNodesCloseTo(ctx context.Context, p wgs84.Point, dist float64) ([]*Node, error) {
	minLon, minLat, maxLon, maxLat := boundingBox(p, dist)

	query, args, err := sq.Select("id", "lon", "lat").
		From("nodes").
		Where(sq.And{
			sq.GtOrEq{"lon": minLon}, sq.LtOrEq{"lon": maxLon},
			sq.GtOrEq{"lat": minLat}, sq.LtOrEq{"lat": maxLat},
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building proximity query: %w", err)
	}

	rows, err := r.engine.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finding nodes close to %v: %w", p, err)
	}
	defer rows.Close()

	var nodes []*Node
	for rows.Next() {
		var node Node
		if err := rows.Scan(&node.ID, &node.Position.Lon, &node.Position.Lat); err != nil {
			return nil, fmt.Errorf("scanning node: %w", err)
		}
		// The bounding box over-selects at the corners.
		if wgs84.Distance(p, node.Position) <= dist {
			nodes = append(nodes, &node)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("finding nodes close to %v: %w", p, err)
	}

	return nodes, nil
}

// FindLinesCloseTo returns all lines within dist meters around the given
// point, in no particular order.
func (r *Reader) FindLinesCloseTo(ctx context.Context, p wgs84.Point, dist float64) ([]*Line, error) {
	// Prefilter on endpoint nodes inside the box, then measure against the
	// full geometry. The box is padded by the longest line so that lines
	// passing close by with far-away endpoints are not missed.
	minLon, minLat, maxLon, maxLat := boundingBox(p, dist+maxLineLength)

	subquery := sq.Select("id").
		From("nodes").
		Where(sq.And{
			sq.GtOrEq{"lon": minLon}, sq.LtOrEq{"lon": maxLon},
			sq.GtOrEq{"lat": minLat}, sq.LtOrEq{"lat": maxLat},
		})

	query, args, err := lineSelect().
		Where(sq.Or{
			subqueryIn("startnode", subquery),
			subqueryIn("endnode", subquery),
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building proximity query: %w", err)
	}

	rows, err := r.engine.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finding lines close to %v: %w", p, err)
	}

	candidates, err := collectLines(rows)
	if err != nil {
		return nil, fmt.Errorf("finding lines close to %v: %w", p, err)
	}

	var lines []*Line
	for _, line := range candidates {
		if line.DistanceTo(p) <= dist {
			lines = append(lines, line)
		}
	}

	return lines, nil
}

// maxLineLength pads line proximity boxes, in meters. Lines of the test
// network are a few hundred meters at most.
const maxLineLength = 500.0

func (r *Reader) count(ctx context.Context, table string) (int64, error) {
	query, _, err := sq.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("building count query: %w", err)
	}

	var count int64
	if err := r.engine.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}

	return count, nil
}

func (r *Reader) linesWhere(ctx context.Context, pred interface{}) ([]*Line, error) {
	query, args, err := lineSelect().Where(pred).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building lines query: %w", err)
	}

	rows, err := r.engine.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}

	lines, err := collectLines(rows)
	if err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}

	return lines, nil
}

func lineSelect() sq.SelectBuilder {
	return sq.Select("id", "startnode", "endnode", "frc", "fow", "path").From("lines")
}

func subqueryIn(column string, subquery sq.SelectBuilder) sq.Sqlizer {
	query, args, _ := subquery.ToSql()
	return sq.Expr(fmt.Sprintf("%s IN (%s)", column, query), args...)
}

func scanNode(row *sql.Row) (*Node, error) {
	var node Node
	if err := row.Scan(&node.ID, &node.Position.Lon, &node.Position.Lat); err != nil {
		return nil, err
	}
	return &node, nil
}

func collectLines(rows *sql.Rows) ([]*Line, error) {
	defer rows.Close()

	var lines []*Line
	for rows.Next() {
		var (
			line Line
			frc  uint8
			fow  uint8
			wkt  string
		)
		if err := rows.Scan(&line.ID, &line.StartNode, &line.EndNode, &frc, &fow, &wkt); err != nil {
			return nil, fmt.Errorf("scanning line: %w", err)
		}

		path, err := wgs84.ParseLineString(wkt)
		if err != nil {
			return nil, fmt.Errorf("decoding geometry of line %d: %w", line.ID, err)
		}

		line.FRC = mapdata.FRC(frc)
		line.FOW = mapdata.FOW(fow)
		line.Geometry = path
		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// boundingBox returns a lon/lat box around p sized for the given distance
// in meters.
func boundingBox(p wgs84.Point, dist float64) (minLon, minLat, maxLon, maxLat float64) {
	dLat := dist / metersPerDegreeLat
	dLon := dist / (metersPerDegreeLat * math.Cos(p.Lat*math.Pi/180))

	return p.Lon - dLon, p.Lat - dLat, p.Lon + dLon, p.Lat + dLat
}
