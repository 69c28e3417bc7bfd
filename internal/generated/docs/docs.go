// Package docs registers the OpenAPI document with swag so that echo-swagger
// can serve it under /swagger/doc.json.
package docs

import (
	"encoding/json"
	"sync"

	"parceltracker/internal/generated/servers"

	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	once sync.Once
	data []byte
	err  error
}

var doc = &openAPIDoc{}

func (d *openAPIDoc) load() ([]byte, error) {
	d.once.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			d.err = err
			return
		}
		d.data, d.err = json.Marshal(swagger)
	})
	return d.data, d.err
}

// ReadDoc implements swag.Swagger.
func (d *openAPIDoc) ReadDoc() string {
	data, err := d.load()
	if err != nil {
		return "{}"
	}
	return string(data)
}

// JSON returns the OpenAPI document rendered as JSON.
func JSON() ([]byte, error) {
	return doc.load()
}

func init() {
	swag.Register(swag.Name, doc)
}
