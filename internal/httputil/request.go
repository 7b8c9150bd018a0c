package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// GetBodyFields returns the names of the fields of resource that are set
// in the request body.
//
// The request body is read and restored, so this can be called before
// BindData.
func GetBodyFields(c *gin.Context, resource any) ([]string, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return []string{}, ErrInvalidBody
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return []string{}, ErrRequestBodyEmpty
	}

	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []string{}, ErrInvalidBody
	}

	fields := []string{}
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		param := strings.Split(field.Tag.Get("json"), ",")[0]

		if _, ok := mapBody[param]; ok {
			fields = append(fields, field.Name)
		}
	}

	return fields, nil
}

// GetURLFields returns the names of the fields of filter that are set in
// the query string of url. The query parameter of a field is read from its
// form tag.
func GetURLFields(url *url.URL, filter any) []string {
	setFields := []string{}

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)

		if url.Query().Has(field.Tag.Get("form")) {
			setFields = append(setFields, field.Name)
		}
	}

	return setFields
}

// ContextURL is the gin context key for the base URL of the API.
const ContextURL = "baseURL"

// BaseURL returns the base URL of the API for the request.
func BaseURL(c *gin.Context) string {
	return c.GetString(ContextURL)
}
