package handler

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
	"github.com/gin-gonic/gin"
)

// bindRecord decodes a partial-update body into a Record. Clients send
// numbers and booleans for cells the sheet stores as text, so scalars are
// stringified here. Nested values have no cell representation.
func bindRecord(c *gin.Context) (sheetstore.Record, error) {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	var body map[string]interface{}
	if err := decoder.Decode(&body); err != nil {
		return nil, err
	}
	record := make(sheetstore.Record, len(body))
	for key, value := range body {
		switch v := value.(type) {
		case string:
			record[key] = v
		case json.Number:
			record[key] = v.String()
		case bool:
			record[key] = strconv.FormatBool(v)
		case nil:
			record[key] = ""
		default:
			return nil, fmt.Errorf("field %q must be a scalar value", key)
		}
	}
	return record, nil
}
