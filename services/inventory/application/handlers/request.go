package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// ItemRequest is the request body for POST /item and PUT /item/{id}.
// Fields stay raw so a wrong JSON type fails validation instead of decoding.
type ItemRequest struct {
	Title      json.RawMessage `json:"title"       swaggertype:"string"  example:"Hammer"`
	LocationID json.RawMessage `json:"location_id" swaggertype:"integer" example:"1"`
} // @name ItemRequest

func (req *ItemRequest) input() appsvcs.ItemInput {
	return appsvcs.ItemInput{
		Title:      jsonString(req.Title),
		LocationID: jsonInt(req.LocationID),
	}
}

// LocationRequest is the request body for POST /location and PUT /location/{id}.
type LocationRequest struct {
	Title json.RawMessage `json:"title" swaggertype:"string"  example:"Shelf A"`
	XCor  json.RawMessage `json:"x_cor" swaggertype:"integer" example:"12"`
	YCor  json.RawMessage `json:"y_cor" swaggertype:"integer" example:"-4"`
} // @name LocationRequest

func (req *LocationRequest) input() appsvcs.LocationInput {
	return appsvcs.LocationInput{
		Title: jsonString(req.Title),
		XCor:  jsonInt(req.XCor),
		YCor:  jsonInt(req.YCor),
	}
}

// jsonString returns raw as a string, or "" when raw is absent or not a JSON string.
func jsonString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// jsonInt returns raw as an integer. Numbers with a zero fractional part
// (12.0) count. Anything else, including null and numeric strings, is nil.
func jsonInt(raw json.RawMessage) *int64 {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	num, ok := v.(json.Number)
	if !ok {
		return nil
	}
	if n, err := num.Int64(); err == nil {
		return &n
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil
	}
	n := int64(f)
	return &n
}

// pathID parses the {id} URL parameter. Anything that is not a positive
// base-10 integer yields 0, which never names a stored row.
func pathID(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
