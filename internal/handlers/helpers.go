package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-board-api/internal/errors"
	"github.com/yukikurage/project-board-api/internal/middleware"
	"github.com/yukikurage/project-board-api/internal/services"
)

// respondServiceError maps a service error class to its HTTP response
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		apierrors.MissingField(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUnavailable):
		apierrors.ServiceUnavailable(c, err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, err.Error())
	}
}

// pathID returns the :id parsed by middleware.RequireIDParam
func pathID(c *gin.Context) (uint64, bool) {
	id, ok := middleware.GetPathID(c)
	if !ok {
		apierrors.InvalidFormat(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// bindBody decodes the JSON body into req, answering 400 on failure
func bindBody(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

// patchBody holds the raw fields of a partial update so that absent fields,
// explicit nulls and values can be told apart.
type patchBody map[string]json.RawMessage

func bindPatch(c *gin.Context) (patchBody, bool) {
	var raw patchBody
	if !bindBody(c, &raw) {
		return nil, false
	}
	return raw, true
}

// field decodes key into dst. It reports whether the key was sent and whether
// it was an explicit null; dst is untouched unless a value was decoded.
func (p patchBody) field(key string, dst any) (present, null bool, err error) {
	value, ok := p[key]
	if !ok {
		return false, false, nil
	}
	if string(value) == "null" {
		return true, true, nil
	}
	if err := json.Unmarshal(value, dst); err != nil {
		return true, false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return true, false, nil
}

// nonNull decodes a field that may be omitted but never cleared.
// The returned pointer is nil when the field was absent.
func nonNull[T any](c *gin.Context, p patchBody, key string) (*T, bool) {
	var value T
	present, null, err := p.field(key, &value)
	switch {
	case err != nil:
		apierrors.InvalidField(c, key, err.Error())
		return nil, false
	case null:
		respondServiceError(c, services.NullFieldError(key))
		return nil, false
	case !present:
		return nil, true
	}
	return &value, true
}

// intValue decodes a JSON integer or a string holding one, as range inputs
// post their value as a string.
type intValue int

func (v *intValue) UnmarshalJSON(data []byte) error {
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	n, err := strconv.Atoi(number.String())
	if err != nil {
		return fmt.Errorf("%q is not an integer", number.String())
	}
	*v = intValue(n)
	return nil
}

// nonNullInt is nonNull for integer fields that may arrive as strings.
func nonNullInt(c *gin.Context, p patchBody, key string) (*int, bool) {
	value, valid := nonNull[intValue](c, p, key)
	if value == nil {
		return nil, valid
	}
	n := int(*value)
	return &n, true
}

func success(c *gin.Context, status int, extra gin.H) {
	body := gin.H{"status": "success"}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

func respondOK(c *gin.Context) {
	success(c, http.StatusOK, nil)
}
