package api

import (
	"encoding/json"
	"strconv"

	"github.com/umaydie-cyber/promotion/internal/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// battleIDParam returns the canonical form of the :battleID path param, or
// false when it is not a UUID.
func battleIDParam(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param(constants.ParamBattleID))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// queryInt parses an optional non-negative integer query param.
func queryInt(c *gin.Context, key string, def int) (int, bool) {
	s := c.Query(key)
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// listLimit reads ?limit=N, clamped to [1, MaxListLimit].
func listLimit(c *gin.Context) int {
	n, ok := queryInt(c, constants.QueryLimit, constants.DefaultListLimit)
	if !ok || n == 0 {
		return constants.DefaultListLimit
	}
	if n > constants.MaxListLimit {
		return constants.MaxListLimit
	}
	return n
}

// gormModelKeys maps the keys gorm.Model contributes to a JSON document to
// snake_case.
var gormModelKeys = map[string]string{
	"ID":        "id",
	"CreatedAt": "created_at",
	"UpdatedAt": "updated_at",
	"DeletedAt": "deleted_at",
}

// normalizeModelKeys recursively renames gorm.Model keys so clients
// consistently receive snake_case.
func normalizeModelKeys(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeModelKeys(val)
		}
		for from, to := range gormModelKeys {
			if val, ok := vv[from]; ok {
				vv[to] = val
				delete(vv, from)
			}
		}
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeModelKeys(vv[i])
		}
		return vv
	default:
		return v
	}
}

// MarshalIntoSnakeKeys marshals v into JSON, decodes it into an
// interface{} and normalizes gorm.Model keys to snake_case. It is used for
// responses built from stored rows.
func MarshalIntoSnakeKeys(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeModelKeys(out), nil
}
