// internal/workers/data-access/query-facilities/queries/playground.go
package queries

import (
	"context"
	"database/sql"
	"time"

	"sportrec-workers/internal/models"
)

func PlaygroundsByDistrict(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	district, ok := params["district"].(string)
	if !ok || district == "" {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	rows, err := db.QueryContext(ctx, `
		SELECT id, district, site_type, name, address,
		       photo_url, model_3d_url, additional_characteristics,
		       required_fitness_level, is_group_activity,
		       requires_teamwork, is_accessible_with_limitations
		FROM sports_playgrounds
		WHERE district = $1
		ORDER BY name`, district)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	var results []models.SportsPlayground
	for rows.Next() {
		p, err := scanPlayground(rows)
		if err != nil {
			return nil, 0, 0, err
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	execTime := time.Since(start).Milliseconds()
	return results, len(results), execTime, nil
}

func PlaygroundDetails(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	id, ok := playgroundID(params)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	row := db.QueryRowContext(ctx, `
		SELECT id, district, site_type, name, address,
		       photo_url, model_3d_url, additional_characteristics,
		       required_fitness_level, is_group_activity,
		       requires_teamwork, is_accessible_with_limitations
		FROM sports_playgrounds
		WHERE id = $1`, id)

	p, err := scanPlayground(row)
	if err != nil {
		return nil, 0, 0, err
	}

	execTime := time.Since(start).Milliseconds()
	return p, 1, execTime, nil
}

// playgroundID tolerates the number types JSON unmarshaling produces.
func playgroundID(params map[string]interface{}) (int64, bool) {
	switch v := params["playgroundId"].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlayground(row rowScanner) (models.SportsPlayground, error) {
	var p models.SportsPlayground
	var photoURL, model3DURL, characteristics, fitnessLevel sql.NullString

	err := row.Scan(
		&p.ID, &p.District, &p.SiteType, &p.Name, &p.Address,
		&photoURL, &model3DURL, &characteristics,
		&fitnessLevel, &p.IsGroupActivity,
		&p.RequiresTeamwork, &p.IsAccessibleWithLimitations,
	)
	if err != nil {
		return models.SportsPlayground{}, err
	}

	p.PhotoURL = photoURL.String
	p.Model3DURL = model3DURL.String
	p.AdditionalCharacteristics = characteristics.String
	p.RequiredFitnessLevel = fitnessLevel.String

	return p, nil
}
