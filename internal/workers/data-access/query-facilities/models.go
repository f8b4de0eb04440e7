// internal/workers/data-access/query-facilities/models.go
package queryfacilities

import "sportrec-workers/internal/models"

type Input struct {
	QueryType    string                 `json:"queryType"`
	District     string                 `json:"district,omitempty"`
	PlaygroundID int64                  `json:"playgroundId,omitempty"`
	Filters      map[string]interface{} `json:"filters,omitempty"`
}

type Output struct {
	Data               interface{} `json:"data"`
	RowCount           int         `json:"rowCount"`
	QueryExecutionTime int64       `json:"queryExecutionTime"` // milliseconds
}

type QueryType = models.QueryType

var (
	QueryTypeFacilityCatalog       = models.QueryTypeFacilityCatalog
	QueryTypePlaygroundsByDistrict = models.QueryTypePlaygroundsByDistrict
	QueryTypePlaygroundDetails     = models.QueryTypePlaygroundDetails
)
