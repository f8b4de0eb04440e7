// internal/models/query_types.go
package models

type QueryType string

const (
	QueryTypeFacilityCatalog       QueryType = "facility_catalog"
	QueryTypePlaygroundsByDistrict QueryType = "playgrounds_by_district"
	QueryTypePlaygroundDetails     QueryType = "playground_details"
)
