package servers

import (
	"fmt"

	"parceltracker/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger parses the embedded api/openapi.yml. External references are
// rejected.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false
	swagger, err = loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
