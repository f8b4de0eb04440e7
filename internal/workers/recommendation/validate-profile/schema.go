// internal/workers/recommendation/validate-profile/schema.go
package validateprofile

// profileSchema bounds each field to the domain the questionnaire produces.
// Unknown fields pass through and missing fields default, mirroring how the
// scorer treats them; violations are reported, not fatal, in permissive mode.
const profileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "fitness_level":       {"type": "integer", "minimum": 1, "maximum": 3},
    "age_category":        {"type": "integer", "minimum": 1, "maximum": 4},
    "training_type":       {"type": "integer", "minimum": 1, "maximum": 4},
    "training_goal":       {"type": "integer", "minimum": 1, "maximum": 4},
    "sports_facility":     {"type": "string"},
    "group_or_individual": {"type": "integer", "minimum": 1, "maximum": 2},
    "health_status":       {"type": "integer", "minimum": 1, "maximum": 3},
    "training_frequency":  {"type": "integer", "minimum": 0},
    "training_time":       {"type": "integer", "minimum": 1, "maximum": 3},
    "chronic_diseases":    {"type": "array", "items": {"type": "string"}},
    "weight":              {"type": "number", "exclusiveMinimum": 0},
    "height":              {"type": "number", "exclusiveMinimum": 0},
    "health_group":        {"type": ["integer", "null"]},
    "skill_focus":         {"type": "array", "items": {"type": "integer"}},
    "cooperation":         {"type": "boolean"},
    "budget":              {"type": ["number", "null"], "minimum": 0}
  }
}`

// strictProfileSchema applies the same bounds and additionally requires the
// fields the scorer cannot default sensibly.
const strictProfileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["fitness_level", "age_category", "health_status"],
  "properties": {
    "fitness_level":       {"type": "integer", "minimum": 1, "maximum": 3},
    "age_category":        {"type": "integer", "minimum": 1, "maximum": 4},
    "training_type":       {"type": "integer", "minimum": 1, "maximum": 4},
    "training_goal":       {"type": "integer", "minimum": 1, "maximum": 4},
    "sports_facility":     {"type": "string"},
    "group_or_individual": {"type": "integer", "minimum": 1, "maximum": 2},
    "health_status":       {"type": "integer", "minimum": 1, "maximum": 3},
    "training_frequency":  {"type": "integer", "minimum": 0},
    "training_time":       {"type": "integer", "minimum": 1, "maximum": 3},
    "chronic_diseases":    {"type": "array", "items": {"type": "string"}},
    "weight":              {"type": "number", "exclusiveMinimum": 0},
    "height":              {"type": "number", "exclusiveMinimum": 0},
    "health_group":        {"type": ["integer", "null"]},
    "skill_focus":         {"type": "array", "items": {"type": "integer"}},
    "cooperation":         {"type": "boolean"},
    "budget":              {"type": ["number", "null"], "minimum": 0}
  }
}`
