// internal/workers/data-access/query-facilities/queries/catalog.go
package queries

import (
	"context"
	"database/sql"
	"time"
)

func FacilityCatalog(ctx context.Context, db *sql.DB, _ map[string]interface{}) (interface{}, int, int64, error) {
	start := time.Now()

	rows, err := db.QueryContext(ctx, `
		SELECT name, cohort_range
		FROM facilities
		ORDER BY position`)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	var results []map[string]interface{}
	for rows.Next() {
		var name, cohortRange string
		if err := rows.Scan(&name, &cohortRange); err != nil {
			return nil, 0, 0, err
		}
		results = append(results, map[string]interface{}{
			"name":        name,
			"cohortRange": cohortRange,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	execTime := time.Since(start).Milliseconds()
	return results, len(results), execTime, nil
}
