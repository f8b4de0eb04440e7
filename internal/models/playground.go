// internal/models/playground.go
package models

// SportsPlayground is a row from the sports_playgrounds table: the
// municipal playground inventory the query-facilities worker serves.
type SportsPlayground struct {
	ID                          int64  `json:"id"`
	District                    string `json:"district"`
	SiteType                    string `json:"siteType"`
	Name                        string `json:"name"`
	Address                     string `json:"address"`
	PhotoURL                    string `json:"photoUrl,omitempty"`
	Model3DURL                  string `json:"model3dUrl,omitempty"`
	AdditionalCharacteristics   string `json:"additionalCharacteristics,omitempty"`
	RequiredFitnessLevel        string `json:"requiredFitnessLevel,omitempty"`
	IsGroupActivity             bool   `json:"isGroupActivity"`
	RequiresTeamwork            bool   `json:"requiresTeamwork"`
	IsAccessibleWithLimitations bool   `json:"isAccessibleWithLimitations"`
}
